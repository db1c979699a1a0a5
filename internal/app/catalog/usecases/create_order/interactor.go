package create_order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/bakery-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bakery-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bakery-catalog-service/internal/pkg/clock"
)

// Request is the application-level create-order request.
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Details       string
	PickupDate    *string // RFC3339 date, optional
}

// Interactor implements the create-order usecase: validate, persist one
// document, return its identifier.
type Interactor struct {
	OrderRepo contracts.OrderRepo
	Clock     clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(orderRepo contracts.OrderRepo, clk clock.Clock) *Interactor {
	return &Interactor{
		OrderRepo: orderRepo,
		Clock:     clk,
	}
}

// Execute creates a new order and persists it.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	pickup, err := parsePickupDate(req.PickupDate)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	order, err := domain.NewOrder(id, req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.Details, pickup, now)
	if err != nil {
		return "", err
	}

	if err := it.OrderRepo.Insert(ctx, order); err != nil {
		return "", err
	}

	return order.ID(), nil
}

// ErrInvalidPickupDate indicates a pickup date that is not RFC3339 or a plain date.
var ErrInvalidPickupDate = errors.New("pickup date must be an RFC3339 timestamp or YYYY-MM-DD")

func parsePickupDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		u := t.UTC()
		return &u, nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		u := t.UTC()
		return &u, nil
	}
	return nil, ErrInvalidPickupDate
}
