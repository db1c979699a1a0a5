package search_products

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
	"github.com/murkotick/bakery-catalog-service/internal/models/m_product"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// MongoSearchProductsQuery runs the catalog search against the products collection.
type MongoSearchProductsQuery struct {
	DB *mongodb.Adapter
}

func NewMongoSearchProductsQuery(db *mongodb.Adapter) *MongoSearchProductsQuery {
	return &MongoSearchProductsQuery{DB: db}
}

// SearchProducts returns the requested page of matching products.
func (q *MongoSearchProductsQuery) SearchProducts(ctx context.Context, sq search.Query) ([]*dto.ProductDTO, error) {
	opCtx, cancel := q.DB.OperationContext(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(buildSort(sq.Sort)).
		SetSkip(int64(sq.Page.Skip())).
		SetLimit(int64(sq.Page.Limit()))

	cur, err := q.DB.Collection(m_product.CollectionName).Find(opCtx, buildFilter(sq.Filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(opCtx)

	var out []*dto.ProductDTO
	for cur.Next(opCtx) {
		var doc m_product.Doc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, mapDoc(&doc))
	}
	return out, cur.Err()
}

// CountProducts returns the total match count for the filter, uncapped by
// skip/limit. It may lag concurrent writes; the count is advisory for
// pagination UI.
func (q *MongoSearchProductsQuery) CountProducts(ctx context.Context, f search.Filter) (int64, error) {
	opCtx, cancel := q.DB.OperationContext(ctx)
	defer cancel()
	return q.DB.Collection(m_product.CollectionName).CountDocuments(opCtx, buildFilter(f))
}

// buildFilter translates the normalized filter into a MongoDB predicate.
// All present conditions are AND-ed; an empty filter matches everything.
func buildFilter(f search.Filter) bson.M {
	var and []bson.M

	if f.Text != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Text), Options: "i"}
		and = append(and, bson.M{"$or": []bson.M{
			{m_product.FieldName: rx},
			{m_product.FieldDescription: rx},
		}})
	}

	if f.Category != "" {
		// Anchored regex gives case-insensitive equality without requiring
		// a collation-enabled index.
		rx := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.Category) + "$", Options: "i"}
		and = append(and, bson.M{m_product.FieldCategory: rx})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		bounds := bson.M{}
		if f.MinPrice != nil {
			bounds["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			bounds["$lte"] = *f.MaxPrice
		}
		and = append(and, bson.M{m_product.FieldPrice: bounds})
	}

	if f.AvailableOnly {
		and = append(and, bson.M{m_product.FieldAvailable: true})
	}

	switch len(and) {
	case 0:
		return bson.M{}
	case 1:
		return and[0]
	default:
		return bson.M{"$and": and}
	}
}

// buildSort translates the sort order, always appending an _id tiebreak so
// paging over equal keys stays deterministic.
func buildSort(s search.Sort) bson.D {
	dir := 1
	if s.Descending {
		dir = -1
	}
	return bson.D{
		{Key: storeField(s.Field), Value: dir},
		{Key: m_product.FieldID, Value: 1},
	}
}

func storeField(field string) string {
	switch field {
	case search.FieldName:
		return m_product.FieldName
	case search.FieldPrice:
		return m_product.FieldPrice
	default:
		return m_product.FieldCreatedAt
	}
}

func mapDoc(doc *m_product.Doc) *dto.ProductDTO {
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
	return out
}
