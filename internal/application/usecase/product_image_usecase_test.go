package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

func newImageUseCase(images *fakeImages, processor *fakeProcessor) *ProductImageUseCase {
	return NewProductImageUseCase(
		images,
		newFakeProducts(&entity.Product{ID: "b1", ProductType: entity.ProductTypeBook, IsActive: true}),
		&fakeCurrencies{latest: &entity.Currency{Amount: decimal.NewFromInt(2)}},
		&fakeVariants{},
		&fakeStorage{},
		processor,
		nil,
	)
}

func TestProductImageCreate_PostProcesa(t *testing.T) {
	images := &fakeImages{}
	processor := &fakeProcessor{}
	uc := newImageUseCase(images, processor)
	file := upload("cover.jpg", "jpg")

	out, err := uc.Create(context.Background(), dto.ProductImageRequest{
		ProductID: ptr("b1"), Wrapper: ptr(entity.WrapperHard), Price: ptr(decimal.NewFromInt(15)),
	}, &file)
	require.NoError(t, err)
	assert.Equal(t, int64(30), out.PriceUZS)
	assert.Equal(t, "/media/product/cover.jpg", out.Image)
	assert.Equal(t, []string{"/srv/media/product/cover.jpg"}, processor.processed)
}

func TestProductImageCreate_Rechazos(t *testing.T) {
	uc := newImageUseCase(&fakeImages{}, &fakeProcessor{})
	ctx := context.Background()
	file := upload("x.jpg", "x")

	_, err := uc.Create(ctx, dto.ProductImageRequest{ProductID: ptr("b1"), Price: ptr(decimal.NewFromInt(1))}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el archivo es obligatorio")

	_, err = uc.Create(ctx, dto.ProductImageRequest{ProductID: ptr("b1"), Wrapper: ptr("karton"), Price: ptr(decimal.NewFromInt(1))}, &file)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.ProductImageRequest{ProductID: ptr("b1"), Price: ptr(decimal.NewFromInt(-1))}, &file)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductImage_SoloConMuqova(t *testing.T) {
	images := &fakeImages{items: []*entity.ProductImage{
		{ID: "i1", ProductID: "b1", Wrapper: ptr(entity.WrapperSoft), Price: decimal.NewFromInt(5)},
		{ID: "i2", ProductID: "b1", ColorID: ptr("red"), Price: decimal.NewFromInt(5)},
	}}
	uc := newImageUseCase(images, &fakeProcessor{})

	out, err := uc.List(context.Background(), dto.PageRequest{}, true)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "i1", out.Items[0].ID)

	_, err = uc.Get(context.Background(), "i2", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
