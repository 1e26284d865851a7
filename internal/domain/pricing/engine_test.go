package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func images(prices ...string) []*entity.ProductImage {
	out := make([]*entity.ProductImage, 0, len(prices))
	for _, p := range prices {
		out = append(out, &entity.ProductImage{Price: dec(p)})
	}
	return out
}

func TestBasePrice(t *testing.T) {
	assert.True(t, BasePrice(images("120.50", "99")).Equal(dec("120.50")), "se usa la primera imagen")
	assert.True(t, BasePrice(nil).IsZero(), "sin imágenes el precio es 0, sin fallar")
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		base, pct, want string
	}{
		{"200", "25", "150"},
		{"100", "10", "90"},
		{"99.99", "0", "0"},
		{"80", "-5", "0"},
		{"0", "50", "0"},
	}
	for _, c := range cases {
		got := DiscountedPrice(dec(c.base), dec(c.pct))
		assert.Truef(t, got.Equal(dec(c.want)), "base=%s pct=%s: got %s want %s", c.base, c.pct, got, c.want)
	}
}

func TestDiscountedPrice_Propiedad(t *testing.T) {
	for base := int64(1); base <= 500; base += 37 {
		for pct := int64(1); pct <= 100; pct += 9 {
			b, p := decimal.NewFromInt(base), decimal.NewFromInt(pct)
			want := b.Mul(decimal.NewFromInt(1).Sub(p.Div(decimal.NewFromInt(100))))
			assert.True(t, DiscountedPrice(b, p).Equal(want))
		}
	}
}

func TestConvertedPrice(t *testing.T) {
	usd := &entity.Currency{Amount: dec("12650.5")}
	assert.Equal(t, int64(126505), ConvertedPrice(dec("10"), usd))
	assert.Equal(t, int64(12650), ConvertedPrice(dec("1"), usd), "se trunca, no se redondea")
	assert.Equal(t, int64(10), ConvertedPrice(dec("10.9"), nil), "sin tasa se usa la identidad")
	assert.Equal(t, int64(10), ConvertedPrice(dec("10"), &entity.Currency{Amount: decimal.Zero}))
}

func TestInstallment(t *testing.T) {
	variant := &entity.Variant{Percent: dec("10"), Duration: 5}

	assert.Equal(t, int64(110), InstallmentTotal(dec("100"), nil, variant))
	assert.Equal(t, int64(22), InstallmentMonthly(dec("100"), nil, variant))
}

func TestInstallment_ConTasa(t *testing.T) {
	usd := &entity.Currency{Amount: dec("12000")}
	variant := &entity.Variant{Percent: dec("20"), Duration: 12}

	// conv = 1 200 000; total = 1 440 000; mensual = 120 000
	assert.Equal(t, int64(1_440_000), InstallmentTotal(dec("100"), usd, variant))
	assert.Equal(t, int64(120_000), InstallmentMonthly(dec("100"), usd, variant))
}

func TestInstallment_SinPlan(t *testing.T) {
	assert.Equal(t, int64(100), InstallmentTotal(dec("100"), nil, nil))
	assert.Equal(t, int64(100), InstallmentMonthly(dec("100"), nil, nil))
	assert.Equal(t, int64(110), InstallmentMonthly(dec("100"), nil, &entity.Variant{Percent: dec("10")}),
		"duración 0 equivale a un pago")
}

func TestInstallmentMonthly_Trunca(t *testing.T) {
	variant := &entity.Variant{Percent: dec("0"), Duration: 3}
	assert.Equal(t, int64(33), InstallmentMonthly(dec("100"), nil, variant))
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]int{3, 4, 5}))
	assert.Equal(t, 3.7, AverageRating([]int{3, 4, 4}))
}

func TestRatingPercent(t *testing.T) {
	assert.Equal(t, 0.0, RatingPercent(nil))
	assert.Equal(t, 80.0, RatingPercent([]int{3, 4, 5}))
	assert.Equal(t, 100.0, RatingPercent([]int{5}))
}

func TestRatePercent(t *testing.T) {
	assert.Equal(t, 60.0, RatePercent(3))
	assert.Equal(t, 0.0, RatePercent(0))
}

func TestQuoteProduct(t *testing.T) {
	p := &entity.Product{Percentage: dec("10")}
	usd := &entity.Currency{Amount: dec("2")}
	variant := &entity.Variant{Percent: dec("10"), Duration: 5}

	q := QuoteProduct(p, images("100", "300"), usd, variant)
	assert.True(t, q.Price.Equal(dec("100")))
	assert.True(t, q.Discount.Equal(dec("90")))
	assert.Equal(t, int64(200), q.PriceUZS)
	assert.Equal(t, int64(180), q.DiscountUZS)
	assert.Equal(t, int64(220), q.TotalUZS)
	assert.Equal(t, int64(44), q.MonthlyUZS)
}

func TestQuoteProduct_SinDatos(t *testing.T) {
	q := QuoteProduct(&entity.Product{}, nil, nil, nil)
	assert.True(t, q.Price.IsZero())
	assert.True(t, q.Discount.IsZero())
	assert.Zero(t, q.PriceUZS)
	assert.Zero(t, q.MonthlyUZS)
	assert.Zero(t, q.TotalUZS)
}

func TestQuoteImage(t *testing.T) {
	img := &entity.ProductImage{Price: dec("50")}
	q := QuoteImage(img, &entity.Currency{Amount: dec("3")}, &entity.Variant{Percent: dec("20"), Duration: 6})
	assert.Equal(t, int64(150), q.PriceUZS)
	assert.Equal(t, int64(180), q.TotalUZS)
	assert.Equal(t, ImageQuote{}, QuoteImage(nil, nil, nil))
}
