package kernel

// PaginationOptions carries page-based pagination parameters from the API edge
// down to the repositories.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps pagination options to sane values.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Offset returns the SQL offset for the current page.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes the position of a result set within the full collection.
type Page struct {
	Number     int `json:"number"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginated wraps a page of items with its pagination metadata.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// NewPaginated builds a Paginated result from a page of items and the total count.
func NewPaginated[T any](items []T, page, pageSize, total int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Paginated[T]{
		Items: items,
		Page: Page{
			Number:     page,
			Size:       pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Empty: len(items) == 0,
	}
}
