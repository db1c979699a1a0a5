package contracts

import (
	"context"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
)

type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	SearchProducts(ctx context.Context, q search.Query) ([]*dto.ProductDTO, error)
	CountProducts(ctx context.Context, f search.Filter) (int64, error)
	ListCategories(ctx context.Context) ([]string, error)
}
