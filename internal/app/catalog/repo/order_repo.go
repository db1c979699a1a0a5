package repo

import (
	"context"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/models/m_order"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// OrderRepo is the MongoDB implementation of the write-side order repository.
type OrderRepo struct {
	DB *mongodb.Adapter
}

func NewOrderRepo(db *mongodb.Adapter) *OrderRepo {
	return &OrderRepo{DB: db}
}

// buildInsertDoc constructs the document used for insertion. Unexported so
// tests in the same package can inspect it without a live database.
func buildInsertDoc(o *domain.Order) map[string]interface{} {
	return m_order.BuildInsertDoc(
		o.ID(),
		o.CustomerName(),
		o.CustomerEmail(),
		o.CustomerPhone(),
		o.Details(),
		o.PickupDate(),
		string(o.Status()),
		o.CreatedAt().UTC(),
	)
}

// Insert persists a new order document.
func (r *OrderRepo) Insert(ctx context.Context, o *domain.Order) error {
	opCtx, cancel := r.DB.OperationContext(ctx)
	defer cancel()

	_, err := r.DB.Collection(m_order.CollectionName).InsertOne(opCtx, buildInsertDoc(o))
	return err
}
