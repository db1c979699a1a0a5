package get_product

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/models/m_product"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// MongoGetProductQuery fetches a single product document by its identifier.
type MongoGetProductQuery struct {
	DB *mongodb.Adapter
}

func NewMongoGetProductQuery(db *mongodb.Adapter) *MongoGetProductQuery {
	return &MongoGetProductQuery{DB: db}
}

func (q *MongoGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	opCtx, cancel := q.DB.OperationContext(ctx)
	defer cancel()

	var doc m_product.Doc
	err := q.DB.Collection(m_product.CollectionName).
		FindOne(opCtx, bson.M{m_product.FieldID: productID}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	out := &dto.ProductDTO{
		ProductID:   doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Category:    doc.Category,
		Price:       doc.Price,
		Available:   doc.Available,
	}
	if !doc.CreatedAt.IsZero() {
		c := doc.CreatedAt.UTC().Format(time.RFC3339)
		out.CreatedAt = &c
	}
	return out, nil
}
