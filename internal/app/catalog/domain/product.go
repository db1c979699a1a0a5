package domain

import (
	"strings"
	"time"
)

const (
	maxNameLength        = 255
	maxCategoryLength    = 100
	maxDescriptionLength = 2000
)

// Product is a catalog entry. The catalog is read-mostly: entries are created
// by the seed binary and served by the search queries, so the entity carries
// validation only, no lifecycle transitions.
type Product struct {
	id          string
	name        string
	description string
	category    string
	price       float64
	available   bool
	createdAt   time.Time
}

// NewProduct creates a validated Product.
func NewProduct(id, name, description, category string, price float64, available bool, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateProductCategory(category); err != nil {
		return nil, err
	}
	if len(description) > maxDescriptionLength {
		return nil, ErrProductDescriptionTooLong
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		category:    strings.TrimSpace(category),
		price:       price,
		available:   available,
		createdAt:   now,
	}, nil
}

// Getters

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Category() string     { return p.category }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Available() bool      { return p.available }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > maxNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func validateProductCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ErrEmptyProductCategory
	}
	if len(trimmed) > maxCategoryLength {
		return ErrProductCategoryTooLong
	}
	return nil
}
