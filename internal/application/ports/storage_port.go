package ports

import (
	"context"
	"io"
)

// Upload archivo recibido en una petición multipart, antes de persistirse.
type Upload struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// FileStorage puerto de salida para guardar archivos subidos (imágenes, íconos, banners).
// Save devuelve la ruta relativa con la que se persiste la fila; URL la convierte en pública.
type FileStorage interface {
	Save(ctx context.Context, folder string, upload Upload) (string, error)
	Path(rel string) string
	URL(rel string) string
}
