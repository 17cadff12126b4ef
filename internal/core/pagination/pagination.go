package pagination

import "strconv"

// DefaultPageSize is the number of items per page used by the feed views
const DefaultPageSize = 10

// Page is a bounded slice of an ordered result set plus navigation metadata
type Page[T any] struct {
	Items       []T `json:"items"`
	Number      int `json:"number"`     // 1-based index of this page
	TotalPages  int `json:"totalPages"` // total number of pages (at least 1)
	TotalItems  int `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Paginate slices an ordered result set into a fixed-size page.
// Page numbers out of range are clamped rather than rejected: requests past the
// last page return the last page, and numbers below 1 return the first page.
// An empty result set yields a single empty page.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      pageNumber,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}

// ParsePageNumber converts a raw query parameter into a page number.
// Absent or non-numeric values default to page 1.
func ParsePageNumber(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
