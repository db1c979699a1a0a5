package m_order

// Field constants for the custom-orders collection.
const (
	CollectionName = "custom-orders"

	FieldID            = "_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldDetails       = "details"
	FieldPickupDate    = "pickup_date"
	FieldStatus        = "status"
	FieldCreatedAt     = "created_at"
)
