package dto

// ProductDTO contains the product fields returned by read queries.
// Timestamps use *string (RFC3339) so transport can serialize them directly.
type ProductDTO struct {
	ProductID   string
	Name        string
	Description *string
	Category    string
	Price       float64
	Available   bool
	CreatedAt   *string
}

// ProductPageDTO is the pagination envelope produced by the search query.
type ProductPageDTO struct {
	Items       []*ProductDTO
	Total       int64
	Page        int
	PageCount   int
	HasNext     bool
	HasPrevious bool
}
