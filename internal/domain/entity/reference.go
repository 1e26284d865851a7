package entity

import "time"

// Brand marca de productos.
type Brand struct {
	ID          string
	Title       string
	ProductType ProductType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Color color de un producto; Name es el hex (#rrggbb), Title el nombre visible.
type Color struct {
	ID        string
	Name      string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Size talla.
type Size struct {
	ID          string
	Name        string
	ProductType ProductType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Author autor de libros.
type Author struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
