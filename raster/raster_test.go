package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNRGBA(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, m, ToNRGBA(m))

	rgba := image.NewRGBA(image.Rect(2, 2, 6, 6))
	rgba.SetRGBA(2, 2, color.RGBA{0x40, 0x20, 0x10, 0x80})
	rgba.SetRGBA(5, 5, color.RGBA{0xff, 0, 0, 0xff})

	out := ToNRGBA(rgba)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	assert.Equal(t, color.NRGBAModel.Convert(rgba.At(2, 2)), out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, out.NRGBAAt(3, 3))
}

func TestEncodeDecode(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	m.SetNRGBA(0, 0, color.NRGBA{0xc8, 0x64, 0x32, 0x81})
	m.SetNRGBA(2, 1, color.NRGBA{0x01, 0x02, 0x03, 0x04})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	out, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), out.Bounds())
	assert.Equal(t, m.Pix, out.Pix)
}

func TestDecodeGIF(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	m := image.NewPaletted(image.Rect(0, 0, 32, 32), color.Palette{color.RGBA{}, red})
	m.SetColorIndex(17, 3, 1)

	b := new(bytes.Buffer)
	require.NoError(t, gif.Encode(b, m, nil))

	out, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), out.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, out.NRGBAAt(17, 3))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 0))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "texture.png")

	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.SetNRGBA(1, 0, color.NRGBA{0x11, 0x22, 0x33, 0x44})
	require.NoError(t, Save(file, m))

	// Overwrite in place
	m.SetNRGBA(0, 1, color.NRGBA{0xff, 0xff, 0xff, 0xff})
	require.NoError(t, Save(file, m))

	out, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, m.Pix, out.Pix)

	// No temporary files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "texture.png", entries[0].Name())
}

func TestSaveMissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "texture.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
