package entity

// OrderLine línea de un pedido colocado fuera de este servicio; solo se usa para notificar.
type OrderLine struct {
	UserPhone       string
	ProductTitle    string
	VariantDuration int
	PhotoPath       string
}
