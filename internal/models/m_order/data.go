package m_order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildInsertDoc prepares the canonical order document for insertion.
// Optional fields (phone, pickup date) are omitted when absent rather than
// stored as nulls.
func BuildInsertDoc(orderID, customerName, customerEmail, customerPhone, details string,
	pickupDate *time.Time, status string, createdAt time.Time) bson.M {

	m := bson.M{
		FieldID:            orderID,
		FieldCustomerName:  customerName,
		FieldCustomerEmail: customerEmail,
		FieldDetails:       details,
		FieldStatus:        status,
		FieldCreatedAt:     createdAt,
	}

	if customerPhone != "" {
		m[FieldCustomerPhone] = customerPhone
	}
	if pickupDate != nil {
		m[FieldPickupDate] = pickupDate.UTC()
	}

	return m
}
