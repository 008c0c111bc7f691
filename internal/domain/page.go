package domain

import "fmt"

// Page bounds for list endpoints. MaxPage keeps (MaxPage-1)*MaxPageSize well
// inside any SQL OFFSET.
const (
	DefaultPageSize = 8
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Call Validate before using Offset.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// A nil page means 1 and a nil limit means defaultLimit (DefaultPageSize when
// defaultLimit is not positive). Supplied values are kept as given so that
// Validate can reject them.
func NewPaginationParams(page, limit *int, defaultLimit int) PaginationParams {
	if defaultLimit < 1 || defaultLimit > MaxPageSize {
		defaultLimit = DefaultPageSize
	}
	p := PaginationParams{Page: 1, Limit: defaultLimit}
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	return p
}

// Validate reports an out-of-range page or limit as a *ValidationError.
func (p PaginationParams) Validate() error {
	v := &ValidationError{}
	if p.Page < 1 || p.Page > MaxPage {
		v.Add("page", fmt.Sprintf("page must be between 1 and %d", MaxPage))
	}
	if p.Limit < 1 || p.Limit > MaxPageSize {
		v.Add("limit", fmt.Sprintf("limit must be between 1 and %d", MaxPageSize))
	}
	return v.Err()
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns how many pages of p.Limit items are needed for total rows.
func (p PaginationParams) Pages(total int64) int {
	if p.Limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
