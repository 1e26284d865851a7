package dto

import "time"

// CategoryRequest alta y edición de categorías (JSON o multipart con el archivo "icon").
// Todos los campos son opcionales en PATCH; Missing indica los obligatorios en POST/PUT.
type CategoryRequest struct {
	ParentID    *string `json:"parent_id" form:"parent_id"`
	Title       *string `json:"title" form:"title"`
	ProductType *string `json:"product_type" form:"product_type"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

// Missing campos obligatorios ausentes.
func (r CategoryRequest) Missing() []string {
	return missing(map[string]bool{"title": r.Title == nil})
}

// CategoryResponse salida plana de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	ParentID    *string   `json:"parent_id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	ProductType string    `json:"product_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryTreeResponse categoría con sus hijos activos anidados.
type CategoryTreeResponse struct {
	CategoryResponse
	Children []CategoryTreeResponse `json:"children"`
}

// CategoryDetailResponse subárbol de una categoría y su ruta desde la raíz (sin incluirla).
type CategoryDetailResponse struct {
	CategoryTreeResponse
	Path []CategoryResponse `json:"path"`
}
