package http

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/ports"
)

const pricePrefix = "price_"

// isMultipart indica si el cuerpo llega como multipart/form-data.
func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

func toUpload(fh *multipart.FileHeader) ports.Upload {
	return ports.Upload{
		Filename: fh.Filename,
		Open:     func() (io.ReadCloser, error) { return fh.Open() },
	}
}

// formUpload archivo opcional del campo field; nil si no vino o el cuerpo no es multipart.
func formUpload(c *fiber.Ctx, field string) *ports.Upload {
	if !isMultipart(c) {
		return nil
	}
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil
	}
	up := toUpload(fh)
	return &up
}

// productUploads agrupa los archivos del alta masiva por su clave (id de color o muqova)
// y recoge los valores "price_<clave>".
func productUploads(c *fiber.Ctx) (map[string][]ports.Upload, map[string]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}
	files := make(map[string][]ports.Upload, len(form.File))
	for key, headers := range form.File {
		for _, fh := range headers {
			files[key] = append(files[key], toUpload(fh))
		}
	}
	prices := make(map[string]string)
	for key, values := range form.Value {
		if strings.HasPrefix(key, pricePrefix) && len(values) > 0 {
			prices[key] = values[0]
		}
	}
	return files, prices, nil
}
