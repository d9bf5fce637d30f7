package repository

const (
	// DefaultPage is the page returned when none is requested.
	DefaultPage = 1
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
)

// Pagination describes the page returned by a list request.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

// NewPagination builds the pagination block for a query that matched total items.
func NewPagination(query Query, total int) Pagination {
	return Pagination{
		CurrentPage:  query.Page,
		ItemsPerPage: query.Limit,
		TotalItems:   total,
		TotalPages:   (total + query.Limit - 1) / query.Limit,
	}
}

// Window returns the half-open [start, end) bounds of the page within n items.
func (q *Query) Window(n int) (start, end int) {
	start = min(q.Offset(), n)
	end = min(start+q.Limit, n)
	return start, end
}
