package domain

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Limit is capped at 50 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of trips to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=10).
// The limit is capped at 50: itinerary rows are wide, so runaway listing
// queries are more expensive here than for a typical resource.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 10}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 50 {
			p.Limit = 50
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
