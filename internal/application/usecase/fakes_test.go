package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

func ptr[T any](v T) *T { return &v }

// ---- categorías ----

type fakeCategories struct {
	items map[string]*entity.Category
}

func newFakeCategories(cs ...*entity.Category) *fakeCategories {
	f := &fakeCategories{items: map[string]*entity.Category{}}
	for _, c := range cs {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeCategories) Create(_ context.Context, c *entity.Category) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategories) GetByIDs(_ context.Context, ids []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := f.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, c *entity.Category) error {
	if _, ok := f.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[c.ID] = c
	return nil
}

func (f *fakeCategories) ListActive(ctx context.Context) ([]*entity.Category, error) {
	all, _ := f.ListAll(ctx)
	out := all[:0:0]
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) ListAll(context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ---- productos ----

type fakeProducts struct {
	items      map[string]*entity.Product
	order      []string
	lastFilter entity.ProductFilter
}

func newFakeProducts(ps ...*entity.Product) *fakeProducts {
	f := &fakeProducts{items: map[string]*entity.Product{}}
	for _, p := range ps {
		_ = f.Create(context.Background(), p)
	}
	return f
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	f.items[p.ID] = p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) IncrementView(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.View++
	return nil
}

func (f *fakeProducts) List(_ context.Context, filter entity.ProductFilter) ([]*entity.Product, int, error) {
	f.lastFilter = filter
	var out []*entity.Product
	for _, id := range f.order {
		p, ok := f.items[id]
		if !ok || !p.IsActive {
			continue
		}
		if filter.ProductType != "" && !strings.Contains(string(p.ProductType), filter.ProductType) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, p)
	}
	if filter.OrderDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	total := len(out)
	start := min(filter.Offset, total)
	end := min(start+filter.Limit, total)
	return out[start:end], total, nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ---- imágenes ----

type fakeImages struct {
	items   []*entity.ProductImage
	failAdd bool
}

func (f *fakeImages) Create(_ context.Context, img *entity.ProductImage) error {
	if f.failAdd {
		return errors.New("fallo de escritura")
	}
	f.items = append(f.items, img)
	return nil
}

func (f *fakeImages) GetByID(_ context.Context, id string) (*entity.ProductImage, error) {
	for _, img := range f.items {
		if img.ID == id {
			cp := *img
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeImages) Update(_ context.Context, img *entity.ProductImage) error {
	for i, cur := range f.items {
		if cur.ID == img.ID {
			f.items[i] = img
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeImages) ListByProduct(_ context.Context, productID string) ([]*entity.ProductImage, error) {
	var out []*entity.ProductImage
	for _, img := range f.items {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImages) ListByProducts(ctx context.Context, ids []string) (map[string][]*entity.ProductImage, error) {
	out := map[string][]*entity.ProductImage{}
	for _, id := range ids {
		list, _ := f.ListByProduct(ctx, id)
		if len(list) > 0 {
			out[id] = list
		}
	}
	return out, nil
}

func (f *fakeImages) ListActive(_ context.Context, onlyWrapped bool, limit, offset int) ([]*entity.ProductImage, int, error) {
	var out []*entity.ProductImage
	for _, img := range f.items {
		if onlyWrapped && (img.Wrapper == nil || *img.Wrapper == "") {
			continue
		}
		out = append(out, img)
	}
	total := len(out)
	start := min(offset, total)
	end := min(start+limit, total)
	return out[start:end], total, nil
}

func (f *fakeImages) DeleteBySelector(_ context.Context, sel entity.ImageSelector) ([]*entity.ProductImage, error) {
	var kept, removed []*entity.ProductImage
	for _, img := range f.items {
		if sel.Matches(img) {
			removed = append(removed, img)
		} else {
			kept = append(kept, img)
		}
	}
	f.items = kept
	return removed, nil
}

func (f *fakeImages) UpdatePriceBySelector(_ context.Context, sel entity.ImageSelector, price decimal.Decimal) (int64, error) {
	var n int64
	for _, img := range f.items {
		if sel.Matches(img) {
			img.Price = price
			n++
		}
	}
	return n, nil
}

func (f *fakeImages) Delete(_ context.Context, id string) error {
	for i, img := range f.items {
		if img.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ---- ficha técnica y calificaciones ----

type fakeInfos struct{ items []*entity.AdditionalInfo }

func (f *fakeInfos) Create(_ context.Context, info *entity.AdditionalInfo) error {
	f.items = append(f.items, info)
	return nil
}

func (f *fakeInfos) GetByID(_ context.Context, id string) (*entity.AdditionalInfo, error) {
	for _, info := range f.items {
		if info.ID == id {
			return info, nil
		}
	}
	return nil, nil
}

func (f *fakeInfos) Update(context.Context, *entity.AdditionalInfo) error { return nil }

func (f *fakeInfos) ListByProduct(_ context.Context, productID string) ([]*entity.AdditionalInfo, error) {
	var out []*entity.AdditionalInfo
	for _, info := range f.items {
		if info.ProductID == productID {
			out = append(out, info)
		}
	}
	return out, nil
}

func (f *fakeInfos) List(_ context.Context, _ string, _, _ int) ([]*entity.AdditionalInfo, int, error) {
	return f.items, len(f.items), nil
}

func (f *fakeInfos) Delete(context.Context, string) error { return nil }

type fakeRates struct{ items []*entity.Rate }

func (f *fakeRates) Create(_ context.Context, r *entity.Rate) error {
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRates) GetByID(_ context.Context, id string) (*entity.Rate, error) {
	for _, r := range f.items {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRates) Update(_ context.Context, r *entity.Rate) error {
	for i, cur := range f.items {
		if cur.ID == r.ID {
			f.items[i] = r
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRates) ListByProduct(_ context.Context, productID string) ([]*entity.Rate, error) {
	var out []*entity.Rate
	for _, r := range f.items {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRates) ValuesByProducts(_ context.Context, ids []string) (map[string][]int, error) {
	out := map[string][]int{}
	for _, id := range ids {
		for _, r := range f.items {
			if r.ProductID == id {
				out[id] = append(out[id], r.Rate)
			}
		}
	}
	return out, nil
}

func (f *fakeRates) List(_ context.Context, _ string, _, _ int) ([]*entity.Rate, int, error) {
	return f.items, len(f.items), nil
}

func (f *fakeRates) Delete(context.Context, string) error { return nil }

// ---- tasa y plan ----

type fakeCurrencies struct{ latest *entity.Currency }

func (f *fakeCurrencies) Create(_ context.Context, c *entity.Currency) error {
	f.latest = c
	return nil
}
func (f *fakeCurrencies) GetByID(context.Context, string) (*entity.Currency, error) { return f.latest, nil }
func (f *fakeCurrencies) Latest(context.Context) (*entity.Currency, error)         { return f.latest, nil }
func (f *fakeCurrencies) Update(context.Context, *entity.Currency) error          { return nil }
func (f *fakeCurrencies) List(context.Context, int, int) ([]*entity.Currency, int, error) {
	return nil, 0, nil
}
func (f *fakeCurrencies) Delete(context.Context, string) error { return nil }

type fakeVariants struct{ active *entity.Variant }

func (f *fakeVariants) Create(_ context.Context, v *entity.Variant) error {
	f.active = v
	return nil
}
func (f *fakeVariants) GetByID(context.Context, string) (*entity.Variant, error) { return f.active, nil }
func (f *fakeVariants) Active(context.Context) (*entity.Variant, error)         { return f.active, nil }
func (f *fakeVariants) Update(context.Context, *entity.Variant) error          { return nil }
func (f *fakeVariants) List(context.Context, int, int) ([]*entity.Variant, int, error) {
	return nil, 0, nil
}
func (f *fakeVariants) Delete(context.Context, string) error { return nil }

// ---- transacción, archivos y post-procesado ----

// fakeTx aplica los cambios sobre copias y solo los publica si fn no falla.
type fakeTx struct {
	products *fakeProducts
	images   *fakeImages
	runs     int
}

func (f *fakeTx) RunCatalog(_ context.Context, fn func(repository.ProductRepository, repository.ProductImageRepository) error) error {
	f.runs++
	products := &fakeProducts{items: map[string]*entity.Product{}, order: append([]string(nil), f.products.order...)}
	for k, v := range f.products.items {
		products.items[k] = v
	}
	images := &fakeImages{items: append([]*entity.ProductImage(nil), f.images.items...), failAdd: f.images.failAdd}
	if err := fn(products, images); err != nil {
		return err
	}
	f.products.items, f.products.order = products.items, products.order
	f.images.items = images.items
	return nil
}

type fakeStorage struct {
	mu    sync.Mutex
	saved []string
}

func (f *fakeStorage) Save(_ context.Context, folder string, up ports.Upload) (string, error) {
	rc, err := up.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if _, err := io.ReadAll(rc); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rel := folder + "/" + up.Filename
	f.saved = append(f.saved, rel)
	return rel, nil
}

func (f *fakeStorage) Path(rel string) string { return "/srv/media/" + rel }
func (f *fakeStorage) URL(rel string) string  { return "/media/" + rel }

type fakeProcessor struct {
	processed []string
	err       error
}

func (f *fakeProcessor) Process(_ context.Context, absPath string) error {
	f.processed = append(f.processed, absPath)
	return f.err
}

type fakeSheets struct{ last dto.ProductDetailResponse }

func (f *fakeSheets) GenerateProductSheet(_ context.Context, d dto.ProductDetailResponse) ([]byte, error) {
	f.last = d
	return []byte("%PDF-1.4"), nil
}

func upload(name, content string) ports.Upload {
	return ports.Upload{
		Filename: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
	}
}
