package entity

import "time"

// BannerDiscount campaña promocional con fecha límite a la que se asocian productos.
type BannerDiscount struct {
	ID        string
	Title     string
	Image     string
	Deadline  *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Advertisement anuncio con ícono y banner.
type Advertisement struct {
	ID          string
	Icon        string
	Title       string
	Description string
	BannerImage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Banner banner de portada.
type Banner struct {
	ID          string
	Title       string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
