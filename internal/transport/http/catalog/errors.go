package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/usecases/create_order"
)

// httpStatus translates domain sentinel errors into HTTP status codes.
// Unknown errors become 500.
func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}

	// Not found
	if errors.Is(err, domain.ErrProductNotFound) {
		return http.StatusNotFound
	}

	// Invalid argument (order submission validation)
	switch {
	case errors.Is(err, domain.ErrEmptyCustomerName),
		errors.Is(err, domain.ErrInvalidCustomerEmail),
		errors.Is(err, domain.ErrEmptyOrderDetails),
		errors.Is(err, create_order.ErrInvalidPickupDate):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
