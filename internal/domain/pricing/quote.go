package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// Quote precios derivados de un producto tal como se exponen en la API.
type Quote struct {
	Price       decimal.Decimal // precio base (moneda de la imagen)
	Discount    decimal.Decimal // precio con descuento; 0 sin descuento
	PriceUZS    int64
	DiscountUZS int64
	MonthlyUZS  int64
	TotalUZS    int64
}

// QuoteProduct calcula todos los precios derivados de un producto a partir de sus imágenes,
// la tasa vigente y el plan de cuotas activo. currency y variant pueden ser nil.
func QuoteProduct(p *entity.Product, images []*entity.ProductImage, currency *entity.Currency, variant *entity.Variant) Quote {
	base := BasePrice(images)
	percentage := decimal.Zero
	if p != nil {
		percentage = p.Percentage
	}
	discount := DiscountedPrice(base, percentage)
	return Quote{
		Price:       base,
		Discount:    discount,
		PriceUZS:    ConvertedPrice(base, currency),
		DiscountUZS: ConvertedPrice(discount, currency),
		MonthlyUZS:  InstallmentMonthly(base, currency, variant),
		TotalUZS:    InstallmentTotal(base, currency, variant),
	}
}

// ImageQuote precios derivados de una imagen (SKU).
type ImageQuote struct {
	PriceUZS int64
	TotalUZS int64
}

// QuoteImage precio convertido y total con cuotas de una imagen concreta.
func QuoteImage(img *entity.ProductImage, currency *entity.Currency, variant *entity.Variant) ImageQuote {
	if img == nil {
		return ImageQuote{}
	}
	return ImageQuote{
		PriceUZS: ConvertedPrice(img.Price, currency),
		TotalUZS: InstallmentTotal(img.Price, currency, variant),
	}
}
