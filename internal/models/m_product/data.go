package m_product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Doc mirrors a product document as stored in MongoDB.
type Doc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description *string   `bson:"description,omitempty"`
	Category    string    `bson:"category"`
	Price       float64   `bson:"price"`
	Available   bool      `bson:"available"`
	CreatedAt   time.Time `bson:"created_at"`
}

// BuildInsertDoc prepares the canonical document for insertion.
// The caller supplies created_at (time.Time, UTC).
func BuildInsertDoc(productID, name string, description *string, category string,
	price float64, available bool, createdAt time.Time) bson.M {

	m := bson.M{
		FieldID:        productID,
		FieldName:      name,
		FieldCategory:  category,
		FieldPrice:     price,
		FieldAvailable: available,
		FieldCreatedAt: createdAt,
	}

	if description != nil {
		m[FieldDescription] = *description
	}

	return m
}
