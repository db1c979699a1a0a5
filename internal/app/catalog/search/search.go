// Package search turns untrusted query-string parameters into a normalized,
// bounded catalog query. Parsing is total: malformed values degrade to safe
// defaults instead of producing errors, so the public search endpoint can
// never fail on user-supplied garbage.
package search

import (
	"math"
	"strconv"
	"strings"
)

// Query parameter names accepted by Parse. Unknown parameters are ignored.
const (
	ParamSearch    = "search"
	ParamCategory  = "category"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamAvailable = "available"
	ParamPage      = "page"
	ParamPageSize  = "pageSize"
	ParamSort      = "sort"
)

// Recognized sort keys. Anything else falls back to SortNewest.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Filter is the combined set of AND-ed conditions restricting which products match.
// Zero-valued fields mean "no condition".
type Filter struct {
	// Text is matched case-insensitively as a substring of name OR description.
	Text string

	// Category is matched case-insensitively as an exact value.
	Category string

	// MinPrice/MaxPrice bound the price inclusively. Parse guarantees
	// MinPrice <= MaxPrice whenever both are present.
	MinPrice *float64
	MaxPrice *float64

	// AvailableOnly restricts results to products currently available.
	AvailableOnly bool
}

// Sort is a normalized sort order for the store layer.
type Sort struct {
	Field      string
	Descending bool
}

// Page is a clamped page request. Number >= 1 and 1 <= Size <= the configured max.
type Page struct {
	Number int
	Size   int
}

// Skip returns the number of leading matches to discard. Never negative.
func (p Page) Skip() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of matches to return. Always bounded.
func (p Page) Limit() int {
	return p.Size
}

// Query bundles the normalized filter, sort order and page request.
type Query struct {
	Filter Filter
	Sort   Sort
	Page   Page
}

// Limits carries the configured pagination bounds.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Store field names targeted by sort keys. The store layer maps these onto
// its own document fields.
const (
	FieldName      = "name"
	FieldPrice     = "price"
	FieldCreatedAt = "created_at"
)

// Parse builds a Query from raw string parameters. It is pure and
// deterministic: identical input always yields an identical Query.
//
// Degradation policy:
//   - unparsable numbers are treated as absent, never as errors;
//   - negative price bounds are treated as absent (no stored price is negative);
//   - an inverted price range (min > max) is swapped, not rejected;
//   - page values < 1 become 1, absurdly large ones clamp to a ceiling that
//     keeps the skip arithmetic inside int range;
//   - page sizes clamp into [1, MaxPageSize];
//   - unrecognized sort keys fall back to newest-first.
func Parse(raw map[string]string, limits Limits) Query {
	q := Query{
		Sort: sortFor(raw[ParamSort]),
		Page: Page{
			Number: parsePage(raw[ParamPage]),
			Size:   parsePageSize(raw[ParamPageSize], limits),
		},
	}

	q.Filter.Text = strings.TrimSpace(raw[ParamSearch])
	q.Filter.Category = strings.TrimSpace(raw[ParamCategory])

	lo := parsePrice(raw[ParamMinPrice])
	hi := parsePrice(raw[ParamMaxPrice])
	if lo != nil && hi != nil && *lo > *hi {
		lo, hi = hi, lo
	}
	q.Filter.MinPrice = lo
	q.Filter.MaxPrice = hi

	if v, err := strconv.ParseBool(strings.TrimSpace(raw[ParamAvailable])); err == nil {
		q.Filter.AvailableOnly = v
	}

	return q
}

// maxPageNumber bounds the page number so (page-1)*pageSize cannot overflow
// int and reach the store as a negative skip.
const maxPageNumber = math.MaxInt32

func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxPageNumber {
		return maxPageNumber
	}
	return n
}

func parsePageSize(s string, limits Limits) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = limits.DefaultPageSize
	}
	if n < 1 {
		n = 1
	}
	if n > limits.MaxPageSize {
		n = limits.MaxPageSize
	}
	return n
}

func parsePrice(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

func sortFor(key string) Sort {
	switch strings.TrimSpace(key) {
	case SortOldest:
		return Sort{Field: FieldCreatedAt, Descending: false}
	case SortNameAsc:
		return Sort{Field: FieldName, Descending: false}
	case SortNameDesc:
		return Sort{Field: FieldName, Descending: true}
	case SortPriceAsc:
		return Sort{Field: FieldPrice, Descending: false}
	case SortPriceDesc:
		return Sort{Field: FieldPrice, Descending: true}
	default:
		return Sort{Field: FieldCreatedAt, Descending: true}
	}
}
