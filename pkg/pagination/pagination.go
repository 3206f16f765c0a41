package pagination

// The admin tables page through rows the classic way: page number plus a
// per-page limit, with a separate COUNT for the page selector.

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Page is the envelope every paginated listing returns.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Normalize clamps the params to sane values.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset computes the SQL offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// NewPage assembles a page envelope and derives the page count.
func NewPage[T any](items []T, total int64, params Params) Page[T] {
	n := params.Normalize()
	pages := int(total) / n.Limit
	if int(total)%n.Limit != 0 {
		pages++
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       n.Page,
		Limit:      n.Limit,
		TotalPages: pages,
	}
}
