package dto

import "time"

// BannerDiscountRequest campaña; Deadline acepta "2006-01-02" o RFC3339. Imagen en el archivo "image".
type BannerDiscountRequest struct {
	Title    *string `json:"title" form:"title"`
	Deadline *string `json:"deadline" form:"deadline"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

// Missing todos los campos de la campaña son opcionales.
func (r BannerDiscountRequest) Missing() []string { return nil }

type BannerDiscountResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Image     string     `json:"image"`
	Deadline  *time.Time `json:"deadline"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AdvertisementRequest anuncio; archivos "icon" y "banner_image".
type AdvertisementRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}

func (r AdvertisementRequest) Missing() []string { return nil }

type AdvertisementResponse struct {
	ID          string    `json:"id"`
	Icon        string    `json:"icon"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BannerImage string    `json:"banner_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BannerRequest banner de portada; archivo "image".
type BannerRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}

func (r BannerRequest) Missing() []string { return nil }

type BannerResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
