package contracts

import (
	"context"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
)

// OrderRepo is the write-side repository for custom orders.
type OrderRepo interface {
	Insert(ctx context.Context, order *domain.Order) error
}
