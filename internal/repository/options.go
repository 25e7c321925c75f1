package repository

// Pagination defaults and bounds shared by every list endpoint.
const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultSort   = "desc"
	DefaultSortBy = "created_at"
)

// ListOptions carries pagination, ordering and an equality-only filter map.
// Filter keys are AND-ed together and must pass the repository's column
// allow-list.
type ListOptions struct {
	Page   int
	Limit  int
	Sort   string
	SortBy string
	Where  map[string]any
}

// Normalized clamps the options into valid ranges. Out-of-range values fall
// back to defaults instead of erroring, mirroring the parse-or-default rule
// applied to query-string input.
func (o ListOptions) Normalized() ListOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Sort != "asc" && o.Sort != "desc" {
		o.Sort = DefaultSort
	}
	if o.SortBy == "" {
		o.SortBy = DefaultSortBy
	}
	return o
}

// Offset returns the row offset for the current page.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Pagination is the envelope metadata returned with every list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes pages as ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// Page is a single page of rows plus its pagination metadata.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
