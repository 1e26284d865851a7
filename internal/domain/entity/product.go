package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType discrimina el flujo de validación e imágenes de un producto.
type ProductType string

const (
	ProductTypeBook     ProductType = "book"
	ProductTypeClothing ProductType = "clothing"
	ProductTypeProduct  ProductType = "product"
)

// Valid indica si es uno de los tipos conocidos.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeBook, ProductTypeClothing, ProductTypeProduct:
		return true
	}
	return false
}

// Estados comerciales de un producto.
const (
	StatusNew      = "NEW"
	StatusHot      = "HOT"
	StatusBestSell = "BEST SELL"
	StatusSale     = "SALE"
)

// ValidStatus indica si s es un estado comercial conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusHot, StatusBestSell, StatusSale:
		return true
	}
	return false
}

// Idiomas y escrituras de los libros.
const (
	LanguageEnglish = "english"
	LanguageRussian = "russian"
	LanguageUzbek   = "uzbek"

	ScriptCyrillic = "krill"
	ScriptLatin    = "lotin"
)

// ValidLanguage indica si l es un idioma soportado.
func ValidLanguage(l string) bool {
	return l == LanguageEnglish || l == LanguageRussian || l == LanguageUzbek
}

// ValidScript indica si s es una escritura soportada.
func ValidScript(s string) bool {
	return s == ScriptCyrillic || s == ScriptLatin
}

// Product entidad central del catálogo. El precio vive en ProductImage (una imagen por color o muqova);
// Percentage es el descuento vigente y los precios derivados se calculan al leer, nunca se persisten.
type Product struct {
	ID               string
	Title            string
	Description      string
	Status           string
	ProductType      ProductType
	BrandID          *string
	AuthorID         *string
	AdvertisementID  *string
	BannerDiscountID *string
	Percentage       decimal.Decimal // 0..100
	View             int
	Availability     int
	HasSize          bool
	IsActive         bool
	Language         string // solo libros
	Script           string // solo libros (yozuv)
	CategoryIDs      []string
	SizeIDs          []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductFilter filtros del listado público de productos.
type ProductFilter struct {
	Category       string // subcadena del título de categoría, sin distinguir mayúsculas
	Brand          string // subcadena del título de marca
	Size           string // id exacto de talla
	BannerDiscount string // subcadena del título de la campaña
	ProductType    string // subcadena del tipo
	Search         string // texto libre sobre título y descripción
	OrderDesc      bool   // true: más recientes primero (por defecto)
	Limit          int
	Offset         int
}
