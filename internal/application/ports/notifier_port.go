package ports

import "context"

// OrderNotifier envía una foto con leyenda al chat de pedidos. Un único intento; sin reintentos.
type OrderNotifier interface {
	SendPhoto(ctx context.Context, photoURL, caption string) error
}
