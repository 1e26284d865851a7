package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
)

var allowedExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

// LocalStorage guarda las subidas bajo Dir/<carpeta>/<hash><ext>.
// El nombre sale del contenido: subir dos veces el mismo archivo no lo duplica.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

var _ ports.FileStorage = (*LocalStorage)(nil)

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de media: %w", err)
	}
	return &LocalStorage{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Save copia la subida a disco y devuelve la ruta relativa (con "/").
func (s *LocalStorage) Save(ctx context.Context, folder string, up ports.Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	if !allowedExt[ext] {
		return "", domain.NewValidationError("image", "extensión no permitida: "+ext)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	src, err := up.Open()
	if err != nil {
		return "", fmt.Errorf("abrir subida: %w", err)
	}
	defer src.Close()

	targetDir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("crear carpeta %s: %w", folder, err)
	}
	tmp, err := os.CreateTemp(targetDir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("copiar subida: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("cerrar temporal: %w", err)
	}

	name := fmt.Sprintf("%016x%s", h.Sum64(), ext)
	target := filepath.Join(targetDir, name)
	// El archivo existente puede estar ya post-procesado: no se pisa con los bytes crudos.
	if _, err := os.Stat(target); err == nil {
		return path.Join(folder, name), nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("consultar %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("mover subida: %w", err)
	}
	return path.Join(folder, name), nil
}

// Path ruta absoluta en disco de una ruta relativa.
func (s *LocalStorage) Path(rel string) string {
	return filepath.Join(s.dir, filepath.FromSlash(rel))
}

// URL ruta pública bajo la que se sirve el archivo.
func (s *LocalStorage) URL(rel string) string {
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	return s.urlPrefix + "/" + strings.TrimLeft(rel, "/")
}
