package dto

// OrderLineRequest línea de un pedido colocado en otro sistema.
type OrderLineRequest struct {
	UserPhone       string `json:"user_phone"`
	ProductTitle    string `json:"product_title"`
	VariantDuration int    `json:"variant_duration"`
	PhotoPath       string `json:"photo_path"`
}

// NotifyOrderRequest pedido a notificar al chat.
type NotifyOrderRequest struct {
	Items []OrderLineRequest `json:"items"`
}

// NotifyOrderResponse leyenda enviada (útil para auditar lo publicado).
type NotifyOrderResponse struct {
	Caption  string `json:"caption"`
	PhotoURL string `json:"photo_url"`
}
