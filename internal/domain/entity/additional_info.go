package entity

import "time"

// AdditionalInfo fila de ficha técnica (clave / descripción) de un producto.
type AdditionalInfo struct {
	ID          string
	ProductID   string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
