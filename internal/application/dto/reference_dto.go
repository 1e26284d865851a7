package dto

import "time"

// BrandRequest alta y edición de marcas.
type BrandRequest struct {
	Title       *string `json:"title"`
	ProductType *string `json:"product_type"`
}

func (r BrandRequest) Missing() []string {
	return missing(map[string]bool{"title": r.Title == nil})
}

type BrandResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ProductType string    `json:"product_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ColorRequest Name es el código hex (#rrggbb).
type ColorRequest struct {
	Name  *string `json:"name"`
	Title *string `json:"title"`
}

func (r ColorRequest) Missing() []string {
	return missing(map[string]bool{"name": r.Name == nil, "title": r.Title == nil})
}

type ColorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SizeRequest struct {
	Name        *string `json:"name"`
	ProductType *string `json:"product_type"`
}

func (r SizeRequest) Missing() []string {
	return missing(map[string]bool{"name": r.Name == nil})
}

type SizeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProductType string    `json:"product_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthorRequest struct {
	Name *string `json:"name"`
}

// Missing el nombre del autor es opcional.
func (r AuthorRequest) Missing() []string { return nil }

type AuthorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
