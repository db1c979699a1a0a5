package list_categories

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/murkotick/bakery-catalog-service/internal/models/m_product"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// MongoListCategoriesQuery returns the distinct category values in the catalog.
type MongoListCategoriesQuery struct {
	DB *mongodb.Adapter
}

func NewMongoListCategoriesQuery(db *mongodb.Adapter) *MongoListCategoriesQuery {
	return &MongoListCategoriesQuery{DB: db}
}

func (q *MongoListCategoriesQuery) ListCategories(ctx context.Context) ([]string, error) {
	opCtx, cancel := q.DB.OperationContext(ctx)
	defer cancel()

	raw, err := q.DB.Collection(m_product.CollectionName).
		Distinct(opCtx, m_product.FieldCategory, bson.M{})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}
