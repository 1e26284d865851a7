package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de muqova (encuadernación) que agrupan imágenes de libros en lugar del color.
const (
	WrapperHard = "qattiq"
	WrapperSoft = "yumshoq"
)

// ValidWrapper indica si w es un tipo de muqova conocido.
func ValidWrapper(w string) bool {
	return w == WrapperHard || w == WrapperSoft
}

// ProductImage imagen con precio propio: actúa como SKU por (producto, color) o (producto, muqova).
type ProductImage struct {
	ID        string
	ProductID string
	ColorID   *string
	Wrapper   *string
	Image     string // ruta relativa dentro del directorio de media
	Price     decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImageSelector identifica el grupo de imágenes de un producto para las operaciones masivas.
// Coincide con las imágenes cuyo color es ColorID O cuya muqova es Wrapper.
type ImageSelector struct {
	ProductID string
	ColorID   string
	Wrapper   string
}

// Empty indica que no se indicó ni color ni muqova.
func (s ImageSelector) Empty() bool {
	return s.ColorID == "" && s.Wrapper == ""
}

// Matches evalúa el selector sobre una imagen concreta.
func (s ImageSelector) Matches(img *ProductImage) bool {
	if img == nil || img.ProductID != s.ProductID {
		return false
	}
	if s.ColorID != "" && img.ColorID != nil && *img.ColorID == s.ColorID {
		return true
	}
	return s.Wrapper != "" && img.Wrapper != nil && *img.Wrapper == s.Wrapper
}
