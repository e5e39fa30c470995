package icon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 225, B: 255, A: 255})
		}
	}
	return img
}

func sizesOf(imgs []image.Image) []int {
	var out []int
	for _, img := range imgs {
		out = append(out, img.Bounds().Dx())
	}
	return out
}

func TestLoadMissingIcon(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "clock.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, square(64)))
	require.NoError(t, f.Close())

	imgs, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{64, 16, 32, 48}, sizesOf(imgs))
}

func TestLoadICOPrefersIcoAndKeepsEmbeddedSizes(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "clock.ico"))
	require.NoError(t, err)
	require.NoError(t, ico.Encode(f, square(32)))
	require.NoError(t, f.Close())

	imgs, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{32, 16, 48}, sizesOf(imgs))
}

func TestLoadCorruptIcon(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clock.png"), []byte("not a png"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestResample(t *testing.T) {
	out := Resample(square(100), 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	r, g, b, a := out.At(8, 8).RGBA()
	assert.InDelta(t, 200, float64(r>>8), 1)
	assert.InDelta(t, 225, float64(g>>8), 1)
	assert.InDelta(t, 255, float64(b>>8), 1)
	assert.InDelta(t, 255, float64(a>>8), 1)
}

func TestWithSizesEmpty(t *testing.T) {
	assert.Empty(t, WithSizes(nil, 16))
}
