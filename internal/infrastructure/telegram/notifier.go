package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/catalog-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Notifier implementa OrderNotifier.
var _ ports.OrderNotifier = (*Notifier)(nil)

// Callbacks de los botones; el bot de operadores los espera tal cual.
const (
	callbackAccept = "Complated"
	callbackReturn = "Censel"
)

// Notifier adaptador de OrderNotifier sobre la Bot API de Telegram (sendPhoto).
// Usa net/http de la librería estándar; un único intento por pedido.
type Notifier struct {
	apiURL     string
	token      string
	chatID     string
	httpClient *http.Client
}

// NewNotifier apiURL suele ser "https://api.telegram.org".
func NewNotifier(apiURL, token, chatID string) *Notifier {
	return &Notifier{
		apiURL:     strings.TrimRight(apiURL, "/"),
		token:      token,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ── Protocolo Bot API ─────────────────────────────────────────────────

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type sendPhotoRequest struct {
	ChatID      string         `json:"chat_id"`
	Photo       string         `json:"photo"`
	Caption     string         `json:"caption"`
	ParseMode   string         `json:"parse_mode"`
	ReplyMarkup inlineKeyboard `json:"reply_markup"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendPhoto publica la foto con la leyenda HTML y los botones de aceptar / devolver.
func (n *Notifier) SendPhoto(ctx context.Context, photoURL, caption string) error {
	if n.token == "" || n.chatID == "" {
		return fmt.Errorf("telegram: token o chat_id no configurado")
	}
	payload := sendPhotoRequest{
		ChatID:    n.chatID,
		Photo:     photoURL,
		Caption:   caption,
		ParseMode: "HTML",
		ReplyMarkup: inlineKeyboard{InlineKeyboard: [][]inlineButton{{
			{Text: "✅ Qabul qilish", CallbackData: callbackAccept},
			{Text: "❌ Qaytarish", CallbackData: callbackReturn},
		}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram: serializar request: %w", err)
	}
	url := fmt.Sprintf("%s/bot%s/sendPhoto", n.apiURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: crear HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("telegram: timeout o cancelación: %w", ctx.Err())
		}
		// El error de url.Error incluye la URL con el token; no se propaga.
		return fmt.Errorf("telegram: llamada HTTP fallida")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("telegram: leer respuesta: %w", err)
	}
	var out apiResponse
	_ = json.Unmarshal(raw, &out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram: HTTP %d: %s", resp.StatusCode, out.Description)
	}
	if !out.OK {
		return fmt.Errorf("telegram: respuesta no ok: %s", out.Description)
	}
	return nil
}
