package order

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// ErrNotifierDisabled no hay bot configurado (TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID).
var ErrNotifierDisabled = errors.New("notificador de pedidos deshabilitado")

const separator = "------------------------"

// NotifyUseCase publica un pedido en el chat de operadores.
type NotifyUseCase struct {
	notifier ports.OrderNotifier
	siteURL  string
	log      *logger.Logger
}

// NewNotifyUseCase notifier puede ser nil: Notify devuelve ErrNotifierDisabled.
func NewNotifyUseCase(notifier ports.OrderNotifier, siteURL string, log *logger.Logger) *NotifyUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &NotifyUseCase{notifier: notifier, siteURL: siteURL, log: log}
}

// Notify arma la leyenda y la envía con la foto de la primera línea. Un único intento.
func (uc *NotifyUseCase) Notify(ctx context.Context, in dto.NotifyOrderRequest) (*dto.NotifyOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "el pedido no tiene líneas")
	}
	if uc.notifier == nil {
		return nil, ErrNotifierDisabled
	}
	out := &dto.NotifyOrderResponse{
		Caption:  BuildCaption(in.Items),
		PhotoURL: PhotoURL(uc.siteURL, in.Items),
	}
	if err := uc.notifier.SendPhoto(ctx, out.PhotoURL, out.Caption); err != nil {
		uc.log.Error().Err(err).Int("lines", len(in.Items)).Msg("no se pudo notificar el pedido")
		return nil, fmt.Errorf("notificar pedido: %w", err)
	}
	uc.log.Info().Int("lines", len(in.Items)).Msg("pedido notificado")
	return out, nil
}

// BuildCaption leyenda HTML del pedido: cabecera, teléfono del cliente y un bloque por línea.
func BuildCaption(lines []dto.OrderLineRequest) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<b>Yangi Buyurtma</b> \n")
	fmt.Fprintf(&b, "Telefon raqam: %s \n", html.EscapeString(lines[0].UserPhone))
	for _, l := range lines {
		b.WriteString(separator + "\n")
		fmt.Fprintf(&b, "Product: %s \n", html.EscapeString(l.ProductTitle))
		fmt.Fprintf(&b, "Muddat: %d oyga\n", l.VariantDuration)
	}
	return b.String()
}

// PhotoURL URL pública de la foto de la primera línea.
func PhotoURL(siteURL string, lines []dto.OrderLineRequest) string {
	if len(lines) == 0 {
		return ""
	}
	return siteURL + lines[0].PhotoPath
}
