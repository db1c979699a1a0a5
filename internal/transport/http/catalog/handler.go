package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/search_products"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/usecases/create_order"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	CreateOrder *create_order.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Search     *search_products.Handler
	Get        *get_product.Handler
	Categories *list_categories.Handler
}

// HealthChecker is what the health endpoint needs from the store layer.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler is a thin HTTP transport adapter.
// It normalizes input, maps JSON <-> application DTOs and delegates to the
// query/usecase handlers.
type Handler struct {
	commands Commands
	queries  Queries
	limits   search.Limits
	health   HealthChecker
	log      *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, limits search.Limits, health HealthChecker, log *zap.Logger) *Handler {
	return &Handler{
		commands: cmd,
		queries:  qry,
		limits:   limits,
		health:   health,
		log:      log,
	}
}

// SearchProducts handles GET /products. Malformed filter values never produce
// a 4xx here: the search parser degrades them to defaults, so any input short
// of a store outage yields a well-formed pagination envelope.
func (h *Handler) SearchProducts(c *gin.Context) {
	q := search.Parse(singleValueParams(c), h.limits)

	page, err := h.queries.Search.Execute(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProductPage(page))
}

// GetProduct handles GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "product id is required"})
		return
	}

	dtoOut, err := h.queries.Get.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProduct(dtoOut))
}

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.queries.Categories.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}

	c.JSON(http.StatusOK, cats)
}

// CreateOrder handles POST /orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	id, err := h.commands.CreateOrder.Execute(c.Request.Context(), mapCreateOrderRequest(req))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, createOrderResponse{OrderID: id})
}

// Health handles GET /health: 200 when the store answers a ping, 503 otherwise.
func (h *Handler) Health(c *gin.Context) {
	status := healthResponse{Status: "healthy", API: "running", Database: "connected"}

	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		status.Status = "unhealthy"
		status.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Index handles GET /: a small service card for humans poking at the API.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, indexResponse{
		Message: "Bakery Catalog & Custom Orders API",
		Status:  "running",
		Endpoints: []string{
			"GET /health - health check",
			"GET /products - search the catalog",
			"GET /products/:id - fetch one product",
			"GET /categories - list categories",
			"POST /orders - submit a custom order",
		},
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		// Do not leak store internals to the client.
		c.JSON(status, errorResponse{Error: "internal error"})
		return
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// singleValueParams flattens the query string into the string→string mapping
// the search parser consumes. Repeated parameters keep their first value.
func singleValueParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
