package ports

import "context"

// ImagePostProcessor reescribe en sitio una imagen ya guardada (quitar fondo y componer sobre un color fijo).
// Un error no invalida la imagen original: el llamador lo registra y sigue.
type ImagePostProcessor interface {
	Process(ctx context.Context, absPath string) error
}
