package m_product

// Field constants for the products collection.
const (
	CollectionName = "products"

	FieldID          = "_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldAvailable   = "available"
	FieldCreatedAt   = "created_at"
)
