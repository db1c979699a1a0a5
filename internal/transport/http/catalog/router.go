package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/murkotick/bakery-catalog-service/internal/transport/http/middleware"
)

// NewRouter assembles the gin engine: recovery, request logging, CORS, and
// the route table.
func NewRouter(h *Handler, cors middleware.CORSConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cors))

	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.GET("/products", h.SearchProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.ListCategories)
	r.POST("/orders", h.CreateOrder)

	return r
}
