package imaging

import (
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 200, G: 20, B: 20, A: 255}

// product foto 40x40: fondo blanco con un cuadrado rojo 20x20 en el centro.
func product() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				c = red
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestComposite_FondoReemplazado(t *testing.T) {
	r := NewBackgroundRemover(DefaultConfig())
	out := r.Composite(product())

	assert.Equal(t, color.RGBA{R: 247, G: 243, B: 230, A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 247, G: 243, B: 230, A: 255}, out.RGBAAt(39, 20))
	assert.Equal(t, red, out.RGBAAt(20, 20), "el artículo se conserva")
}

func TestComposite_Reduce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSide = 20
	out := NewBackgroundRemover(cfg).Composite(product())
	assert.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
}

func TestProcess_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foto.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, product()))
	require.NoError(t, f.Close())

	require.NoError(t, NewBackgroundRemover(DefaultConfig()).Process(context.Background(), path))

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{247, 243, 230}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestProcess_GIFSinTocar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gif.Encode(f, product(), nil))
	require.NoError(t, f.Close())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = NewBackgroundRemover(DefaultConfig()).Process(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProcess_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.jpg")
	require.NoError(t, os.WriteFile(path, []byte("no es un jpeg"), 0o644))

	err := NewBackgroundRemover(DefaultConfig()).Process(context.Background(), path)
	assert.Error(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "no es un jpeg", string(data))
}
