package entity

import "time"

// Límites de la calificación.
const (
	MinRate = 0
	MaxRate = 5
)

// Rate calificación 0..5 de un usuario sobre un producto.
type Rate struct {
	ID        string
	UserID    *string
	ProductID string
	Rate      int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRate indica si r pertenece a {0,1,2,3,4,5}.
func ValidRate(r int) bool {
	return r >= MinRate && r <= MaxRate
}
