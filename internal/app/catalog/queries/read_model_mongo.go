package queries

import (
	"context"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/queries/search_products"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/mongodb"
)

// MongoReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type MongoReadModel struct {
	getQ    *get_product.MongoGetProductQuery
	searchQ *search_products.MongoSearchProductsQuery
	catQ    *list_categories.MongoListCategoriesQuery
}

func NewMongoReadModel(db *mongodb.Adapter) *MongoReadModel {
	return &MongoReadModel{
		getQ:    get_product.NewMongoGetProductQuery(db),
		searchQ: search_products.NewMongoSearchProductsQuery(db),
		catQ:    list_categories.NewMongoListCategoriesQuery(db),
	}
}

func (rm *MongoReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *MongoReadModel) SearchProducts(ctx context.Context, q search.Query) ([]*dto.ProductDTO, error) {
	return rm.searchQ.SearchProducts(ctx, q)
}

func (rm *MongoReadModel) CountProducts(ctx context.Context, f search.Filter) (int64, error) {
	return rm.searchQ.CountProducts(ctx, f)
}

func (rm *MongoReadModel) ListCategories(ctx context.Context) ([]string, error) {
	return rm.catQ.ListCategories(ctx)
}
