package domain

import (
	"strings"
	"time"
)

// OrderStatus represents the handling state of a custom order.
type OrderStatus string

const (
	// OrderStatusNew indicates an order that has been submitted but not yet reviewed.
	OrderStatusNew OrderStatus = "new"
)

// Order is a custom-order submission from the website.
type Order struct {
	id            string
	customerName  string
	customerEmail string
	customerPhone string
	details       string
	pickupDate    *time.Time
	status        OrderStatus
	createdAt     time.Time
}

// NewOrder creates a validated Order in the "new" status.
func NewOrder(id, customerName, customerEmail, customerPhone, details string, pickupDate *time.Time, now time.Time) (*Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}
	if err := validateEmail(customerEmail); err != nil {
		return nil, err
	}
	if strings.TrimSpace(details) == "" {
		return nil, ErrEmptyOrderDetails
	}

	return &Order{
		id:            id,
		customerName:  strings.TrimSpace(customerName),
		customerEmail: strings.TrimSpace(customerEmail),
		customerPhone: strings.TrimSpace(customerPhone),
		details:       strings.TrimSpace(details),
		pickupDate:    pickupDate,
		status:        OrderStatusNew,
		createdAt:     now,
	}, nil
}

// Getters

func (o *Order) ID() string            { return o.id }
func (o *Order) CustomerName() string  { return o.customerName }
func (o *Order) CustomerEmail() string { return o.customerEmail }
func (o *Order) CustomerPhone() string { return o.customerPhone }
func (o *Order) Details() string       { return o.details }
func (o *Order) PickupDate() *time.Time {
	return o.pickupDate
}
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// validateEmail applies the minimal sanity check the order form needs.
// Anything stricter belongs to the bakery's mail tooling, not this API.
func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return ErrInvalidCustomerEmail
	}
	return nil
}
