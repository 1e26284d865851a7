package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// CatalogTxRunner ejecuta fn con repos de producto e imágenes atados a una misma transacción.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		products repository.ProductRepository,
		images repository.ProductImageRepository,
	) error) error
}

// tracerName instrumentación de los casos de uso; sin TracerProvider registrado los spans son no-op.
const tracerName = "github.com/jhoicas/catalog-api/usecase"

// Carpetas de media por tipo de archivo.
const (
	folderCategory       = "category"
	folderProduct        = "product"
	folderBannerDiscount = "banner_discount"
	folderAdvertisement  = "advertisement"
	folderBanner         = "banner"
)

// requireFields convierte los campos ausentes en un ValidationError.
func requireFields(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	ve := &domain.ValidationError{}
	for _, f := range missing {
		ve.Add(f, "obligatorio")
	}
	return ve
}

// checkRequired solo exige los obligatorios en altas y reemplazos completos (PUT); PATCH es parcial.
func checkRequired(partial bool, missing []string) error {
	if partial {
		return nil
	}
	return requireFields(missing)
}

// checkLen registra en ve si s supera max caracteres.
func checkLen(ve *domain.ValidationError, field, s string, max int) {
	if utf8.RuneCountInString(s) > max {
		ve.Add(field, fmt.Sprintf("máximo %d caracteres", max))
	}
}

// optionalID normaliza un id opcional: vacío o espacios equivale a nil.
func optionalID(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// mediaURL ruta pública de un archivo guardado; "" si no hay archivo.
func mediaURL(storage ports.FileStorage, rel string) string {
	if rel == "" || storage == nil {
		return rel
	}
	return storage.URL(rel)
}

// saveUpload guarda el archivo si vino en la petición; devuelve "" si up es nil.
func saveUpload(ctx context.Context, storage ports.FileStorage, folder string, up *ports.Upload) (string, error) {
	if up == nil {
		return "", nil
	}
	if storage == nil {
		return "", fmt.Errorf("almacenamiento de archivos no configurado")
	}
	return storage.Save(ctx, folder, *up)
}

// postProcess aplica el post-procesado de imagen. Los errores se registran y se descartan:
// la imagen original ya quedó guardada y la fila confirmada.
func postProcess(ctx context.Context, processor ports.ImagePostProcessor, storage ports.FileStorage, log *logger.Logger, rel string) {
	if processor == nil || storage == nil || rel == "" {
		return
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "image.postprocess")
	span.SetAttributes(attribute.String("image.path", rel))
	defer span.End()
	if err := processor.Process(ctx, storage.Path(rel)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "post-procesado fallido")
		if log != nil {
			log.Warn().Err(err).Str("image", rel).Msg("post-procesado de imagen fallido; se conserva el original")
		}
	}
}
