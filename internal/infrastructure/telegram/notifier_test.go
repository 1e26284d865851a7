package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPhoto_Payload(t *testing.T) {
	var got sendPhotoRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL+"/", "123:abc", "739412274")
	err := n.SendPhoto(context.Background(), "http://choko.uz/media/a.jpg", "<b>Yangi Buyurtma</b>")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendPhoto", path)
	assert.Equal(t, "739412274", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Equal(t, "http://choko.uz/media/a.jpg", got.Photo)
	require.Len(t, got.ReplyMarkup.InlineKeyboard, 1)
	buttons := got.ReplyMarkup.InlineKeyboard[0]
	require.Len(t, buttons, 2)
	assert.Equal(t, "Complated", buttons[0].CallbackData)
	assert.Equal(t, "Censel", buttons[1].CallbackData)
}

func TestSendPhoto_Errores(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Path {
		case "/botbad/sendPhoto":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
		default:
			_, _ = w.Write([]byte(`{"ok":false,"description":"rechazado"}`))
		}
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL, "bad", "1").SendPhoto(context.Background(), "u", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")

	err = NewNotifier(srv.URL, "tok", "1").SendPhoto(context.Background(), "u", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rechazado")
	assert.Equal(t, 2, calls, "sin reintentos")

	err = NewNotifier(srv.URL, "", "1").SendPhoto(context.Background(), "u", "c")
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}
