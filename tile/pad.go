package tile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrShapeMismatch is returned when a sheet is neither the legacy nor the
// padded size.
var ErrShapeMismatch = errors.New("tile: image is wrong size")

// Pad converts a 32 by 32 sheet of 2 by 2 frames into a 36 by 36 sheet with a
// 2 pixel gutter after each frame. A sheet that is already 36 by 36 is
// returned as is. The source image is never modified.
func Pad(m image.Image) (image.Image, error) {
	b := m.Bounds()

	switch {
	case b.Dx() == PaddedSize && b.Dy() == PaddedSize:
		return m, nil
	case b.Dx() != LegacySize || b.Dy() != LegacySize:
		return nil, fmt.Errorf("%w: expected %dx%d or %dx%d, got %dx%d", ErrShapeMismatch, LegacySize, LegacySize, PaddedSize, PaddedSize, b.Dx(), b.Dy())
	}

	// Zero value pixels are transparent black so the gutters need no work
	out := image.NewNRGBA(image.Rect(0, 0, PaddedSize, PaddedSize))

	for fy := 0; fy < framesY; fy++ {
		for fx := 0; fx < framesX; fx++ {
			copyFrame(out, m, fx, fy)
		}
	}

	return out, nil
}

// copyFrame copies frame (fx, fy) of m into its padded position in out. The
// pixels go through color.NRGBAModel rather than image/draw so that
// translucent pixels are not premultiplied and back again.
func copyFrame(out *image.NRGBA, m image.Image, fx, fy int) {
	b := m.Bounds()
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			sx := b.Min.X + fx*frameWidth + x
			sy := b.Min.Y + fy*frameHeight + y

			c := color.NRGBAModel.Convert(m.At(sx, sy)).(color.NRGBA)
			out.SetNRGBA(fx*pitchX+x, fy*pitchY+y, c)
		}
	}
}
