package catalog

import (
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/usecases/create_order"
)

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

type productPageResponse struct {
	Items       []productResponse `json:"items"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	PageCount   int               `json:"pageCount"`
	HasNext     bool              `json:"hasNext"`
	HasPrevious bool              `json:"hasPrevious"`
}

type createOrderRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Details       string  `json:"details"`
	PickupDate    *string `json:"pickupDate"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

type healthResponse struct {
	Status   string `json:"status"`
	API      string `json:"api"`
	Database string `json:"database"`
}

type indexResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func mapProduct(in *dto.ProductDTO) productResponse {
	out := productResponse{
		ID:        in.ProductID,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Available: in.Available,
	}
	if in.Description != nil {
		out.Description = *in.Description
	}
	if in.CreatedAt != nil {
		out.CreatedAt = *in.CreatedAt
	}
	return out
}

func mapProductPage(in *dto.ProductPageDTO) productPageResponse {
	items := make([]productResponse, 0, len(in.Items))
	for _, it := range in.Items {
		if it == nil {
			continue
		}
		items = append(items, mapProduct(it))
	}

	return productPageResponse{
		Items:       items,
		Total:       in.Total,
		Page:        in.Page,
		PageCount:   in.PageCount,
		HasNext:     in.HasNext,
		HasPrevious: in.HasPrevious,
	}
}

func mapCreateOrderRequest(req createOrderRequest) create_order.Request {
	return create_order.Request{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Details:       req.Details,
		PickupDate:    req.PickupDate,
	}
}
