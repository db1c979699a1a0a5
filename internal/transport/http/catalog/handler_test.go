package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/search_products"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/usecases/create_order"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/clock"
	"github.com/murkotick/bakery-catalog-service/internal/transport/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeReadModel struct {
	products   map[string]*dto.ProductDTO
	items      []*dto.ProductDTO
	total      int64
	categories []string
	err        error
}

func (f *fakeReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeReadModel) SearchProducts(ctx context.Context, q search.Query) ([]*dto.ProductDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeReadModel) CountProducts(ctx context.Context, fl search.Filter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

func (f *fakeReadModel) ListCategories(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fakeOrderRepo struct {
	inserted *domain.Order
	err      error
}

func (f *fakeOrderRepo) Insert(ctx context.Context, o *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = o
	return nil
}

type fakeHealth struct{ err error }

func (f *fakeHealth) HealthCheck(ctx context.Context) error { return f.err }

func newTestRouter(t *testing.T, rm *fakeReadModel, repo *fakeOrderRepo, health *fakeHealth) *gin.Engine {
	cmd := Commands{
		CreateOrder: create_order.NewInteractor(repo, clock.NewFake(time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))),
	}
	qry := Queries{
		Search:     search_products.NewHandler(rm),
		Get:        get_product.NewHandler(rm),
		Categories: list_categories.NewHandler(rm),
	}
	limits := search.Limits{DefaultPageSize: 20, MaxPageSize: 100}

	log := zaptest.NewLogger(t)
	h := NewHandler(cmd, qry, limits, health, log)
	cors := middleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	return NewRouter(h, cors, log)
}

func doRequest(r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchProducts_Envelope(t *testing.T) {
	desc := "rich"
	rm := &fakeReadModel{
		items: []*dto.ProductDTO{
			{ProductID: "p-1", Name: "Sachertorte", Description: &desc, Category: "cakes", Price: 32.5, Available: true},
		},
		total: 12,
	}
	r := newTestRouter(t, rm, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/products?search=choc&page=2&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Items       []map[string]interface{} `json:"items"`
		Total       int64                    `json:"total"`
		Page        int                      `json:"page"`
		PageCount   int                      `json:"pageCount"`
		HasNext     bool                     `json:"hasNext"`
		HasPrevious bool                     `json:"hasPrevious"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(12), got.Total)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.PageCount)
	assert.True(t, got.HasNext)
	assert.True(t, got.HasPrevious)
	assert.Equal(t, "Sachertorte", got.Items[0]["name"])
}

func TestSearchProducts_MalformedParamsNeverFail(t *testing.T) {
	rm := &fakeReadModel{total: 0}
	r := newTestRouter(t, rm, &fakeOrderRepo{}, &fakeHealth{})

	targets := []string{
		"/products?page=banana&pageSize=-5",
		"/products?minPrice=cheap&maxPrice=-1",
		"/products?sort=sideways&available=maybe",
		"/products?page=0&pageSize=99999",
		"/products?unknown=param&search=",
	}

	for _, target := range targets {
		w := doRequest(r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, w.Code, "query %q must degrade, not fail", target)
	}
}

func TestSearchProducts_EmptyItemsSerializeAsArray(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{total: 0}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`, "no matches must yield an empty array, not null")
}

func TestSearchProducts_StoreFailure(t *testing.T) {
	rm := &fakeReadModel{err: errors.New("connection reset")}
	r := newTestRouter(t, rm, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// Store internals must not leak to the client.
	assert.Contains(t, w.Body.String(), "internal error")
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestGetProduct(t *testing.T) {
	rm := &fakeReadModel{
		products: map[string]*dto.ProductDTO{
			"p-1": {ProductID: "p-1", Name: "Baguette", Category: "bread", Price: 2.5, Available: true},
		},
	}
	r := newTestRouter(t, rm, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/products/p-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "p-1", got["id"])
	assert.Equal(t, "Baguette", got["name"])
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategories(t *testing.T) {
	rm := &fakeReadModel{categories: []string{"bread", "cakes", "pastries"}}
	r := newTestRouter(t, rm, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"bread", "cakes", "pastries"}, got)
}

func TestListCategories_EmptyIsArray(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	r := newTestRouter(t, &fakeReadModel{}, repo, &fakeHealth{})

	body := []byte(`{
		"customerName": "Ada Lovelace",
		"customerEmail": "ada@example.com",
		"customerPhone": "+44 555 0101",
		"details": "Three-tier chocolate cake",
		"pickupDate": "2026-06-20"
	}`)

	w := doRequest(r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.OrderID)

	require.NotNil(t, repo.inserted)
	assert.Equal(t, got.OrderID, repo.inserted.ID())
}

func TestCreateOrder_MalformedJSON(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodPost, "/orders", []byte(`{"customerName": `))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"customerEmail":"ada@example.com","details":"cake"}`},
		{"bad email", `{"customerName":"Ada","customerEmail":"nope","details":"cake"}`},
		{"missing details", `{"customerName":"Ada","customerEmail":"ada@example.com"}`},
		{"bad pickup date", `{"customerName":"Ada","customerEmail":"ada@example.com","details":"cake","pickupDate":"someday"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			r := newTestRouter(t, &fakeReadModel{}, repo, &fakeHealth{})

			w := doRequest(r, http.MethodPost, "/orders", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, repo.inserted)
		})
	}
}

func TestCreateOrder_RepoFailure(t *testing.T) {
	repo := &fakeOrderRepo{err: errors.New("write concern failure")}
	r := newTestRouter(t, &fakeReadModel{}, repo, &fakeHealth{})

	body := []byte(`{"customerName":"Ada","customerEmail":"ada@example.com","details":"cake"}`)
	w := doRequest(r, http.MethodPost, "/orders", body)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "write concern")
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestHealth_DatabaseDown(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{err: errors.New("no reachable servers")})

	w := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, w.Body.String(), `"database":"disconnected"`)
}

func TestIndex(t *testing.T) {
	r := newTestRouter(t, &fakeReadModel{}, &fakeOrderRepo{}, &fakeHealth{})

	w := doRequest(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}
