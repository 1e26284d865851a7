package entity

import "time"

// Category nodo del árbol de categorías. ParentID nil indica raíz.
// Se oculta con IsActive=false en lugar de borrarse.
type Category struct {
	ID          string
	ParentID    *string
	Title       string
	Icon        string
	ProductType ProductType
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// Attachable solo las categorías activas y con padre pueden asignarse a un producto.
func (c *Category) Attachable() bool {
	return c != nil && c.IsActive && !c.IsRoot()
}
