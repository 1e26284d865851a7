package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/ports"
)

func TestProductUploads_AgrupaPorClaveYRecogePrecios(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Kitob"))
	require.NoError(t, w.WriteField("price_qattiq", "120000"))
	require.NoError(t, w.WriteField("price_yumshoq", "90000"))
	for _, f := range []struct{ field, name, body string }{
		{"qattiq", "a.png", "aaa"},
		{"qattiq", "b.png", "bbb"},
		{"yumshoq", "c.jpg", "ccc"},
	} {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	var (
		files  map[string][]ports.Upload
		prices map[string]string
		first  string
	)
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var err error
		files, prices, err = productUploads(c)
		if err != nil {
			return err
		}
		// El contenido solo vive mientras dura la petición.
		rc, err := files["qattiq"][0].Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		first = string(raw)
		return err
	})

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, files["qattiq"], 2)
	require.Len(t, files["yumshoq"], 1)
	assert.Equal(t, "a.png", files["qattiq"][0].Filename)
	assert.Equal(t, "aaa", first)
	assert.Equal(t, map[string]string{"price_qattiq": "120000", "price_yumshoq": "90000"}, prices)
}

func TestFormUpload_SinMultipart_Nil(t *testing.T) {
	app := fiber.New()
	var got *ports.Upload
	app.Post("/", func(c *fiber.Ctx) error {
		got = formUpload(c, "image")
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Nil(t, got)
}
