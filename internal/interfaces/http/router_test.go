package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/order"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	apphttp "github.com/jhoicas/catalog-api/internal/interfaces/http"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memBrands struct {
	mu    sync.Mutex
	items map[string]*entity.Brand
}

func (m *memBrands) Create(_ context.Context, b *entity.Brand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.items[b.ID] = &cp
	return nil
}

func (m *memBrands) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBrands) Update(_ context.Context, b *entity.Brand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.items[b.ID] = &cp
	return nil
}

func (m *memBrands) List(_ context.Context, limit, offset int) ([]*entity.Brand, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Brand, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	total := len(out)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return out[offset:end], total, nil
}

func (m *memBrands) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	return m.Create(context.Background(), u)
}

// memProducts solo resuelve GetByID; el resto no se usa en estas rutas.
type memProducts struct {
	items map[string]*entity.Product
}

func (m *memProducts) Create(context.Context, *entity.Product) error { return nil }
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (m *memProducts) Update(context.Context, *entity.Product) error { return nil }
func (m *memProducts) IncrementView(context.Context, string) error   { return nil }
func (m *memProducts) List(context.Context, entity.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (m *memProducts) Delete(context.Context, string) error { return nil }

type memRates struct {
	mu    sync.Mutex
	items map[string]*entity.Rate
}

func (m *memRates) Create(_ context.Context, r *entity.Rate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memRates) GetByID(_ context.Context, id string) (*entity.Rate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.items[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *memRates) Update(ctx context.Context, r *entity.Rate) error { return m.Create(ctx, r) }
func (m *memRates) ListByProduct(context.Context, string) ([]*entity.Rate, error) {
	return nil, nil
}
func (m *memRates) ValuesByProducts(context.Context, []string) (map[string][]int, error) {
	return map[string][]int{}, nil
}
func (m *memRates) List(context.Context, string, int, int) ([]*entity.Rate, int, error) {
	return nil, 0, nil
}
func (m *memRates) Delete(context.Context, string) error { return nil }

// memImages solo implementa lo que usan las operaciones por grupo.
type memImages struct {
	mu    sync.Mutex
	items []*entity.ProductImage
}

func (m *memImages) Create(_ context.Context, img *entity.ProductImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, img)
	return nil
}
func (m *memImages) GetByID(context.Context, string) (*entity.ProductImage, error) { return nil, nil }
func (m *memImages) Update(context.Context, *entity.ProductImage) error            { return nil }
func (m *memImages) ListByProduct(context.Context, string) ([]*entity.ProductImage, error) {
	return nil, nil
}
func (m *memImages) ListByProducts(context.Context, []string) (map[string][]*entity.ProductImage, error) {
	return map[string][]*entity.ProductImage{}, nil
}
func (m *memImages) ListActive(context.Context, bool, int, int) ([]*entity.ProductImage, int, error) {
	return nil, 0, nil
}

func (m *memImages) DeleteBySelector(_ context.Context, sel entity.ImageSelector) ([]*entity.ProductImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept, removed []*entity.ProductImage
	for _, img := range m.items {
		if sel.Matches(img) {
			removed = append(removed, img)
		} else {
			kept = append(kept, img)
		}
	}
	m.items = kept
	return removed, nil
}

func (m *memImages) UpdatePriceBySelector(context.Context, entity.ImageSelector, decimal.Decimal) (int64, error) {
	return 0, nil
}
func (m *memImages) Delete(context.Context, string) error { return nil }

type recordingNotifier struct {
	photos   []string
	captions []string
}

func (n *recordingNotifier) SendPhoto(_ context.Context, photoURL, caption string) error {
	n.photos = append(n.photos, photoURL)
	n.captions = append(n.captions, caption)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

const productID = "00000000-0000-0000-0000-0000000000aa"

type testEnv struct {
	app      *fiber.App
	brands   *memBrands
	rates    *memRates
	images   *memImages
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T, notifierEnabled bool) *testEnv {
	t.Helper()
	brands := &memBrands{items: map[string]*entity.Brand{}}
	users := &memUsers{items: map[string]*entity.User{}}
	rates := &memRates{items: map[string]*entity.Rate{}}
	images := &memImages{}
	products := &memProducts{items: map[string]*entity.Product{
		productID: {ID: productID, Title: "Kurtka", IsActive: true, ProductType: entity.ProductTypeClothing},
	}}
	rec := &recordingNotifier{}
	var notifier ports.OrderNotifier
	if notifierEnabled {
		notifier = rec
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:    usecase.NewUserUseCase(users),
		BrandUC:   usecase.NewBrandUseCase(brands),
		RateUC:    usecase.NewRateUseCase(rates, products),
		ProductUC: usecase.NewProductUseCase(usecase.ProductDeps{Products: products, Images: images}),
		NotifyUC:  order.NewNotifyUseCase(notifier, "https://choko.uz/", logger.Nop()),
		JWTSecret: testJWTSecret,
	})
	return &testEnv{app: app, brands: brands, rates: rates, images: images, notifier: rec}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo: lecturas públicas, escrituras de staff
// ──────────────────────────────────────────────────────────────────────────────

func TestBrands_EscrituraRequiereStaff(t *testing.T) {
	env := newTestEnv(t, false)
	body := map[string]any{"title": "Nike"}

	resp, _ := env.do(t, http.MethodPost, "/api/brands", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/brands", tokenForRole(t, "customer"), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := env.do(t, http.MethodPost, "/api/brands", tokenForRole(t, "staff"), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Len(t, env.brands.items, 1)
}

func TestBrands_ListadoPublicoPaginado(t *testing.T) {
	env := newTestEnv(t, false)
	for _, title := range []string{"Adidas", "Nike", "Puma"} {
		resp, _ := env.do(t, http.MethodPost, "/api/brands", tokenForRole(t, "superuser"), map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw := env.do(t, http.MethodGet, "/api/brands?limit=2&offset=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ListResponse[dto.BrandResponse]
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 3, out.Page.Total)
	assert.Equal(t, 2, out.Page.Limit)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Nike", out.Items[0].Title)
}

func TestBrands_PatchParcialYPutCompleto(t *testing.T) {
	env := newTestEnv(t, false)
	staff := tokenForRole(t, "staff")
	resp, raw := env.do(t, http.MethodPost, "/api/brands", staff, map[string]any{"title": "Nike"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.BrandResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = env.do(t, http.MethodPatch, "/api/brands/"+created.ID, staff, map[string]any{"product_type": "clothing"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var patched dto.BrandResponse
	require.NoError(t, json.Unmarshal(raw, &patched))
	assert.Equal(t, "Nike", patched.Title)
	assert.Equal(t, "clothing", patched.ProductType)

	resp, raw = env.do(t, http.MethodPut, "/api/brands/"+created.ID, staff, map[string]any{"product_type": "book"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errBody))
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Contains(t, errBody.Fields, "title")
}

func TestBrands_Inexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t, false)
	resp, raw := env.do(t, http.MethodGet, "/api/brands/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newTestEnv(t, false)
	creds := map[string]any{"email": "Ali@Example.com", "password": "supersecreto", "name": "Ali"}

	resp, raw := env.do(t, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "customer", user.Role)

	resp, _ = env.do(t, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ali@example.com", "password": "supersecreto"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &login))
	require.NotEmpty(t, login.Token)

	resp, raw = env.do(t, http.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, user.ID, me.ID)

	resp, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ali@example.com", "password": "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRates_CrearEsDeStaff_AutorSaleDelToken(t *testing.T) {
	env := newTestEnv(t, false)
	body := map[string]any{"product_id": productID, "rate": 4, "user_id": "otro-usuario"}

	resp, _ := env.do(t, http.MethodPost, "/api/rates", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/rates", tokenForRole(t, "customer"), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.rates.items, "un cliente no debe crear calificaciones")

	for _, role := range []string{"staff", "superuser"} {
		resp, raw := env.do(t, http.MethodPost, "/api/rates", tokenForRole(t, role), body)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
		var rate dto.RateResponse
		require.NoError(t, json.Unmarshal(raw, &rate))
		require.NotNil(t, rate.UserID)
		assert.Equal(t, testUserID, *rate.UserID, role)
		assert.InDelta(t, 80.0, rate.RatePercent, 0.001)
	}
}

func TestRates_FueraDeRango_Retorna400(t *testing.T) {
	env := newTestEnv(t, false)
	resp, raw := env.do(t, http.MethodPost, "/api/rates", tokenForRole(t, "staff"), map[string]any{"product_id": productID, "rate": 6})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "INVALID_RATE")
	assert.Empty(t, env.rates.items)
}

func TestRates_EditarEsDeStaff(t *testing.T) {
	env := newTestEnv(t, false)
	resp, _ := env.do(t, http.MethodPatch, "/api/rates/x", tokenForRole(t, "customer"), map[string]any{"rate": 1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Imágenes por grupo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_RemoveImage(t *testing.T) {
	env := newTestEnv(t, false)
	red, soft := "red", entity.WrapperSoft
	env.images.items = []*entity.ProductImage{
		{ID: "i1", ProductID: productID, ColorID: &red, Image: "product/a.png"},
		{ID: "i2", ProductID: productID, Wrapper: &soft, Image: "product/b.png"},
	}
	base := "/api/products/remove-image?product=" + productID

	resp, _ := env.do(t, http.MethodDelete, base+"&color=red", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = env.do(t, http.MethodDelete, base+"&color=red", tokenForRole(t, "customer"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Len(t, env.images.items, 2)

	staff := tokenForRole(t, "staff")
	resp, raw := env.do(t, http.MethodDelete, base+"&color=blue", staff, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "sin coincidencias también es 204: %s", raw)
	assert.Len(t, env.images.items, 2)

	resp, _ = env.do(t, http.MethodDelete, base+"&color=red", staff, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Len(t, env.images.items, 1)
	assert.Equal(t, "i2", env.images.items[0].ID)

	resp, _ = env.do(t, http.MethodDelete, base, staff, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "selector vacío")

	resp, _ = env.do(t, http.MethodDelete, "/api/products/remove-image?product=no-existe&color=red", staff, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_Notify(t *testing.T) {
	env := newTestEnv(t, true)
	body := dto.NotifyOrderRequest{Items: []dto.OrderLineRequest{
		{UserPhone: "+998901234567", ProductTitle: "Kurtka", VariantDuration: 12, PhotoPath: "media/product/a.png"},
	}}

	resp, _ := env.do(t, http.MethodPost, "/api/orders/notify", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw := env.do(t, http.MethodPost, "/api/orders/notify", tokenForRole(t, "customer"), body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.Len(t, env.notifier.photos, 1)
	assert.Equal(t, "https://choko.uz/media/product/a.png", env.notifier.photos[0])
	assert.Contains(t, env.notifier.captions[0], "Muddat: 12 oyga")
}

func TestOrders_NotifierDeshabilitado_Retorna503(t *testing.T) {
	env := newTestEnv(t, false)
	body := dto.NotifyOrderRequest{Items: []dto.OrderLineRequest{{UserPhone: "1", ProductTitle: "x", VariantDuration: 3}}}

	resp, raw := env.do(t, http.MethodPost, "/api/orders/notify", tokenForRole(t, "customer"), body)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(raw), "NOTIFIER_DISABLED")
}

func TestOrders_SinLineas_Retorna400(t *testing.T) {
	env := newTestEnv(t, true)
	resp, _ := env.do(t, http.MethodPost, "/api/orders/notify", tokenForRole(t, "customer"), dto.NotifyOrderRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.notifier.photos)
}
