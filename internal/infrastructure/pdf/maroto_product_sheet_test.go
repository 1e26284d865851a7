package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
)

func sampleProduct() dto.ProductDetailResponse {
	hard := "qattiq"
	return dto.ProductDetailResponse{
		ProductResponse: dto.ProductResponse{
			ID:          "00000000-0000-0000-0000-000000000001",
			Title:       "O'tkan kunlar",
			Status:      "NEW",
			ProductType: "book",
			Percentage:  decimal.NewFromInt(10),
			Pricing: dto.PricingResponse{
				PriceUZS: 120000, DiscountUZS: 108000, MonthlyUZS: 12000, TotalUZS: 144000,
			},
			Rating: 4.5,
		},
		Images: []dto.ProductImageResponse{
			{Wrapper: &hard, Price: decimal.NewFromInt(10), PriceUZS: 120000, TotalUZS: 144000},
		},
		AdditionalInfo: []dto.AdditionalInfoResponse{{Title: "Sahifalar", Description: "320"}},
		Variant:        &dto.VariantResponse{Duration: 12},
	}
}

func TestGenerateProductSheet(t *testing.T) {
	out, err := NewMarotoSheetGenerator("http://choko.uz/").GenerateProductSheet(context.Background(), sampleProduct())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateProductSheet_SinQRNiImagenes(t *testing.T) {
	p := sampleProduct()
	p.Images = nil
	p.AdditionalInfo = nil
	p.Variant = nil

	out, err := NewMarotoSheetGenerator("").GenerateProductSheet(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestVariantLabel(t *testing.T) {
	red := "red"
	assert.Equal(t, "Rang: red", variantLabel(dto.ProductImageResponse{ColorID: &red}))
	assert.Equal(t, "—", variantLabel(dto.ProductImageResponse{}))
}
