package pagination

// PageRequest is a page-number pagination request. Page is 1-based;
// zero values mean "let the callee pick a default".
type PageRequest struct {
	Page    int
	PerPage int
}

type Page[T any] struct {
	Items      []T
	Count      int
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

func (p Page[T]) HasNextPage() bool {
	return p.Page < p.TotalPages
}

func (p Page[T]) HasPreviousPage() bool {
	return p.Page > 1
}

// Clamp normalizes a request against the given defaults: page falls
// back to 1, per-page to def, and per-page never exceeds max.
func (r PageRequest) Clamp(def, max int) PageRequest {
	out := r
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.PerPage <= 0 {
		out.PerPage = def
	}
	if out.PerPage > max {
		out.PerPage = max
	}
	return out
}
