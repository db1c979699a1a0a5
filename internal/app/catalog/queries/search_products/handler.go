package search_products

import (
	"context"

	contracts "github.com/murkotick/bakery-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/search"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute runs the two coupled reads (page + total count) and assembles the
// pagination envelope. The reads are not transactionally consistent with each
// other; under concurrent writes the count may be slightly stale. A page
// beyond the last one yields empty items, not an error.
func (h *Handler) Execute(ctx context.Context, q search.Query) (*dto.ProductPageDTO, error) {
	items, err := h.readModel.SearchProducts(ctx, q)
	if err != nil {
		return nil, err
	}

	total, err := h.readModel.CountProducts(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	size := int64(q.Page.Size)
	pageCount := 0
	if size > 0 {
		pageCount = int((total + size - 1) / size)
	}

	return &dto.ProductPageDTO{
		Items:       items,
		Total:       total,
		Page:        q.Page.Number,
		PageCount:   pageCount,
		HasNext:     int64(q.Page.Number)*size < total,
		HasPrevious: q.Page.Number > 1,
	}, nil
}
