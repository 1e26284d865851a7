// Package imaging post-procesa las fotos de producto: quita el fondo liso alrededor del artículo
// y lo compone sobre un color sólido común para todo el catálogo.
package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/jhoicas/catalog-api/internal/application/ports"
)

// ErrUnsupportedFormat la imagen es válida pero su formato no se re-codifica (gif, webp, svg).
var ErrUnsupportedFormat = errors.New("formato de imagen no soportado para post-procesado")

// Config parámetros del recorte de fondo.
type Config struct {
	Background color.RGBA // color con el que se rellena el fondo
	Tolerance  float64    // distancia RGB máxima para considerar un píxel fondo
	Feather    int        // radio del suavizado del borde, en píxeles
	MaxSide    int        // lado máximo tras reducir; 0 no reduce
}

// DefaultConfig fondo crema (247,243,230).
func DefaultConfig() Config {
	return Config{
		Background: color.RGBA{R: 247, G: 243, B: 230, A: 255},
		Tolerance:  40,
		Feather:    2,
		MaxSide:    1600,
	}
}

// BackgroundRemover implementa ports.ImagePostProcessor sobre archivos locales.
type BackgroundRemover struct {
	cfg Config
}

var _ ports.ImagePostProcessor = (*BackgroundRemover)(nil)

func NewBackgroundRemover(cfg Config) *BackgroundRemover {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}
	return &BackgroundRemover{cfg: cfg}
}

// Process reemplaza el archivo por la versión sin fondo. Si algo falla el original queda intacto.
func (r *BackgroundRemover) Process(ctx context.Context, absPath string) error {
	ext := strings.ToLower(filepath.Ext(absPath))
	src, err := decodeFile(absPath, ext)
	if err != nil {
		return err
	}
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := r.Composite(src)
	return writeAtomic(absPath, func(w io.Writer) error {
		if ext == ".png" {
			return png.Encode(w, out)
		}
		return jpeg.Encode(w, out, &jpeg.Options{Quality: 90})
	})
}

// Composite devuelve img reducida, sin fondo y compuesta sobre el color configurado.
func (r *BackgroundRemover) Composite(img image.Image) *image.RGBA {
	src := r.downscale(img)
	b := src.Bounds()
	bg := borderMedian(src)
	mask := floodBackground(src, bg, r.cfg.Tolerance)
	feather(mask, r.cfg.Feather)

	dst := image.NewRGBA(b)
	draw.Draw(dst, b, &image.Uniform{C: r.cfg.Background}, image.Point{}, draw.Src)
	draw.DrawMask(dst, b, src, b.Min, mask, b.Min, draw.Over)
	return dst
}

func (r *BackgroundRemover) downscale(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if limit := r.cfg.MaxSide; limit > 0 && (w > limit || h > limit) {
		if w >= h {
			h = h * limit / w
			w = limit
		} else {
			w = w * limit / h
			h = limit
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, max1(w), max1(h)))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// borderMedian mediana por canal de los píxeles del borde.
func borderMedian(img *image.RGBA) color.RGBA {
	b := img.Bounds()
	var rs, gs, bs []uint8
	add := func(x, y int) {
		c := img.RGBAAt(x, y)
		rs, gs, bs = append(rs, c.R), append(gs, c.G), append(bs, c.B)
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		add(x, b.Min.Y)
		add(x, b.Max.Y-1)
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		add(b.Min.X, y)
		add(b.Max.X-1, y)
	}
	return color.RGBA{R: median(rs), G: median(gs), B: median(bs), A: 255}
}

func median(v []uint8) uint8 {
	if len(v) == 0 {
		return 0
	}
	sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	return v[len(v)/2]
}

// floodBackground marca como fondo (alfa 0) lo alcanzable desde el borde con color cercano a bg.
// El resto queda opaco.
func floodBackground(img *image.RGBA, bg color.RGBA, tolerance float64) *image.Alpha {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := image.NewAlpha(b)
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}
	tol2 := tolerance * tolerance
	visited := make([]bool, w*h)
	stack := make([]image.Point, 0, 2*(w+h))
	push := func(x, y int) {
		i := (y-b.Min.Y)*w + (x - b.Min.X)
		if visited[i] {
			return
		}
		visited[i] = true
		if dist2(img.RGBAAt(x, y), bg) <= tol2 {
			stack = append(stack, image.Point{X: x, Y: y})
		}
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		push(x, b.Min.Y)
		push(x, b.Max.Y-1)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		push(b.Min.X, y)
		push(b.Max.X-1, y)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		mask.SetAlpha(p.X, p.Y, color.Alpha{A: 0})
		if p.X > b.Min.X {
			push(p.X-1, p.Y)
		}
		if p.X < b.Max.X-1 {
			push(p.X+1, p.Y)
		}
		if p.Y > b.Min.Y {
			push(p.X, p.Y-1)
		}
		if p.Y < b.Max.Y-1 {
			push(p.X, p.Y+1)
		}
	}
	return mask
}

func dist2(a, b color.RGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr + dg*dg + db*db
}

// feather desenfoque de caja separable sobre la máscara.
func feather(mask *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := make([]uint8, len(mask.Pix))
	blur := func(src, dst []uint8, n, count, stride, step int) {
		for line := 0; line < count; line++ {
			base := line * stride
			for i := 0; i < n; i++ {
				sum, cnt := 0, 0
				for k := i - radius; k <= i+radius; k++ {
					if k < 0 || k >= n {
						continue
					}
					sum += int(src[base+k*step])
					cnt++
				}
				dst[base+i*step] = uint8(sum / cnt)
			}
		}
	}
	// horizontal: líneas = filas; vertical: líneas = columnas.
	blur(mask.Pix, tmp, w, h, mask.Stride, 1)
	blur(tmp, mask.Pix, h, w, 1, mask.Stride)
}

func decodeFile(absPath, ext string) (image.Image, error) {
	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("abrir imagen: %w", err)
	}
	defer f.Close()
	var img image.Image
	switch ext {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".gif":
		img, err = gif.Decode(f)
	case ".webp":
		img, err = webp.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decodificar imagen: %w", err)
	}
	return img, nil
}

// writeAtomic escribe en un temporal del mismo directorio y lo renombra sobre path.
func writeAtomic(path string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".imaging-*")
	if err != nil {
		return fmt.Errorf("archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("codificar imagen: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
