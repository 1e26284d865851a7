// Package pricing deriva los precios visibles de un producto: descuento, conversión a so'm
// y plan de cuotas. Son funciones puras; nada de lo calculado aquí se persiste.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BasePrice precio de la primera imagen (orden de creación). 0 si el producto no tiene imágenes.
func BasePrice(images []*entity.ProductImage) decimal.Decimal {
	for _, img := range images {
		if img != nil {
			return img.Price
		}
	}
	return decimal.Zero
}

// DiscountedPrice base*(1 - percentage/100) si hay descuento; 0 si percentage <= 0.
func DiscountedPrice(base, percentage decimal.Decimal) decimal.Decimal {
	if !percentage.IsPositive() {
		return decimal.Zero
	}
	return base.Sub(base.Mul(percentage).Div(hundred))
}

// Multiplier tasa vigente; sin tasa registrada (o tasa no positiva) se usa la identidad.
func Multiplier(currency *entity.Currency) decimal.Decimal {
	if currency == nil || !currency.Amount.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return currency.Amount
}

// ConvertedPrice amount * tasa, truncado a entero.
func ConvertedPrice(amount decimal.Decimal, currency *entity.Currency) int64 {
	return amount.Mul(Multiplier(currency)).IntPart()
}

// installmentTotal total con recargo sin truncar: conv + percent/100*conv.
func installmentTotal(base decimal.Decimal, currency *entity.Currency, variant *entity.Variant) decimal.Decimal {
	conv := decimal.NewFromInt(ConvertedPrice(base, currency))
	if variant == nil {
		return conv
	}
	return conv.Add(variant.Percent.Mul(conv).Div(hundred))
}

// InstallmentTotal total a pagar con el plan de cuotas, truncado a entero.
// Sin plan registrado el recargo es 0.
func InstallmentTotal(base decimal.Decimal, currency *entity.Currency, variant *entity.Variant) int64 {
	return installmentTotal(base, currency, variant).IntPart()
}

// InstallmentMonthly cuota mensual: total / duración, truncado a entero.
// Sin plan (o duración no positiva) se toma un único pago.
func InstallmentMonthly(base decimal.Decimal, currency *entity.Currency, variant *entity.Variant) int64 {
	total := installmentTotal(base, currency, variant)
	months := int64(1)
	if variant != nil && variant.Duration > 0 {
		months = int64(variant.Duration)
	}
	return total.Div(decimal.NewFromInt(months)).IntPart()
}

// AverageRating media aritmética redondeada a un decimal; 0.0 sin calificaciones.
func AverageRating(rates []int) float64 {
	mean, ok := average(rates)
	if !ok {
		return 0.0
	}
	return math.Round(mean*10) / 10
}

// RatingPercent media escalada a 0..100 (mean*100/5); 0.0 sin calificaciones.
func RatingPercent(rates []int) float64 {
	mean, ok := average(rates)
	if !ok {
		return 0.0
	}
	return mean * 100 / entity.MaxRate
}

// RatePercent porcentaje de una calificación individual, redondeado a un decimal.
func RatePercent(rate int) float64 {
	return math.Round(float64(rate)*100/entity.MaxRate*10) / 10
}

func average(rates []int) (float64, bool) {
	if len(rates) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range rates {
		sum += r
	}
	return float64(sum) / float64(len(rates)), true
}
