/*
Package raster loads and saves the 32-bit RGBA textures handled by texsync.

Every image is held as an *image.NRGBA, which matches the straight (not
premultiplied) alpha stored in PNG files, so pixels survive a load and save
byte for byte. Sources may be PNG or GIF, both lossless with transparency.
Files are always written as PNG.
*/
package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Decode reads a PNG or GIF image from r and returns it as an *image.NRGBA
// with its top-left corner at (0, 0).
func Decode(r io.Reader) (*image.NRGBA, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(m), nil
}

// ToNRGBA returns m as an *image.NRGBA with its top-left corner at (0, 0).
// If m already is one it is returned without copying.
func ToNRGBA(m image.Image) *image.NRGBA {
	b := m.Bounds()
	if nm, ok := m.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nm
	}

	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA))
		}
	}
	return out
}

// Load opens the file and decodes it.
func Load(file string) (*image.NRGBA, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return m, nil
}

// Encode writes the Image m to w in PNG format.
func Encode(w io.Writer, m image.Image) error {
	return png.Encode(w, m)
}

// Save writes m to file as a PNG. The image is written to a temporary file in
// the same directory which is then renamed over file, so a failed save never
// leaves a truncated texture behind.
func Save(file string, m image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", file, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, file)
}
