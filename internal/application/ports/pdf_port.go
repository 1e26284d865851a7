package ports

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/application/dto"
)

// ProductSheetGenerator genera la ficha de precios de un producto en PDF.
type ProductSheetGenerator interface {
	GenerateProductSheet(ctx context.Context, product dto.ProductDetailResponse) ([]byte, error)
}
