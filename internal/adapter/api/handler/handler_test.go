package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replyrush/internal/adapter/api"
	"replyrush/internal/domain/entity"
	"replyrush/internal/usecase"
	"replyrush/pkg/errors"
	"replyrush/pkg/response"
)

type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *stubProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = "p1"
	}
	r.products = append(r.products, product)
	return nil
}

func (r *stubProductRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubFAQRepo struct{}

func (r *stubFAQRepo) List(ctx context.Context) ([]*entity.FAQ, error)  { return nil, nil }
func (r *stubFAQRepo) Upsert(ctx context.Context, faq *entity.FAQ) error { return nil }
func (r *stubFAQRepo) Delete(ctx context.Context, id string) error       { return nil }

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestUpsertProductStoresAndEchoes(t *testing.T) {
	repo := &stubProductRepo{}
	h := NewProductHandler(usecase.NewCatalogUseCase(repo, &stubFAQRepo{}))

	c, rec := newTestContext(t, http.MethodPost, "/v1/products", `{
		"name": "iPhone 15 Pro Max",
		"price": 1850000,
		"in_stock": true,
		"category": "Phones"
	}`)

	require.NoError(t, h.UpsertProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeResponse(t, rec)
	assert.True(t, res.Success)
	require.Len(t, repo.products, 1)
	assert.Equal(t, "iPhone 15 Pro Max", repo.products[0].Name)
	assert.Equal(t, int64(1850000), repo.products[0].Price)
}

func TestUpsertProductRequiresName(t *testing.T) {
	h := NewProductHandler(usecase.NewCatalogUseCase(&stubProductRepo{}, &stubFAQRepo{}))

	c, rec := newTestContext(t, http.MethodPost, "/v1/products", `{"price": 1000}`)

	require.NoError(t, h.UpsertProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	assert.Contains(t, res.Error.Message, "name")
}

func TestUpsertProductRejectsNegativePrice(t *testing.T) {
	h := NewProductHandler(usecase.NewCatalogUseCase(&stubProductRepo{}, &stubFAQRepo{}))

	c, rec := newTestContext(t, http.MethodPost, "/v1/products", `{"name": "Charger", "price": -50}`)

	require.NoError(t, h.UpsertProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
}

func TestListProductsReturnsEnvelope(t *testing.T) {
	repo := &stubProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "AirPods Pro 2", Price: 320000, InStock: true},
	}}
	h := NewProductHandler(usecase.NewCatalogUseCase(repo, &stubFAQRepo{}))

	c, rec := newTestContext(t, http.MethodGet, "/v1/products", "")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeResponse(t, rec)
	assert.True(t, res.Success)
	assert.Contains(t, rec.Body.String(), "AirPods Pro 2")
}

func TestInboundMessageRequiresContent(t *testing.T) {
	h := NewConversationHandler(nil, "+234000SIMULATOR")

	c, rec := newTestContext(t, http.MethodPost, "/v1/inbound/messages", `{"customer_whatsapp": "+234"}`)

	require.NoError(t, h.HandleInboundMessage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
}

func TestSetHandledByRejectsUnknownMode(t *testing.T) {
	h := NewConversationHandler(nil, "+234000SIMULATOR")

	c, rec := newTestContext(t, http.MethodPut, "/v1/conversations/c1/handled-by", `{"handled_by": "bot"}`)

	require.NoError(t, h.SetHandledBy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	assert.Contains(t, res.Error.Message, "ai human")
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	h := NewOrderHandler(nil)

	c, rec := newTestContext(t, http.MethodPut, "/v1/orders/o1/status", `{"status": "shipped"}`)

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
}
