package domain

import "errors"

// Domain errors for the Product entity
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyProductName indicates an attempt to create a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrEmptyProductCategory indicates an attempt to create a product with an empty category.
	ErrEmptyProductCategory = errors.New("product category cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrProductDescriptionTooLong indicates the product description exceeds maximum length.
	ErrProductDescriptionTooLong = errors.New("product description exceeds maximum length")

	// ErrProductCategoryTooLong indicates the product category exceeds maximum length.
	ErrProductCategoryTooLong = errors.New("product category exceeds maximum length of 100 characters")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Domain errors for the Order entity
var (
	// ErrEmptyCustomerName indicates an order submission without a customer name.
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")

	// ErrInvalidCustomerEmail indicates an order submission with a missing or malformed email.
	ErrInvalidCustomerEmail = errors.New("customer email is missing or invalid")

	// ErrEmptyOrderDetails indicates an order submission without a description of the request.
	ErrEmptyOrderDetails = errors.New("order details cannot be empty")
)
