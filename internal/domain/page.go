package domain

// PagedResult is one page of a remote collection.
// Invariants after Normalize: len(Items) <= PerPage, LastPage >= 1 and
// CurrentPage is within [1, LastPage].
type PagedResult[T any] struct {
	Items       []T
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// SinglePage wraps a bare item list as the only page of its collection.
func SinglePage[T any](items []T) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:       items,
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     len(items),
		Total:       len(items),
	}
}

// Normalize repairs pagination metadata that a backend left inconsistent.
func (p PagedResult[T]) Normalize() PagedResult[T] {
	if p.Items == nil {
		p.Items = []T{}
	}
	if p.PerPage < len(p.Items) {
		p.PerPage = len(p.Items)
	}
	if p.Total < len(p.Items) {
		p.Total = len(p.Items)
	}
	if p.LastPage < 1 {
		p.LastPage = 1
	}
	p.CurrentPage = p.ClampPage(p.CurrentPage)
	return p
}

// ClampPage bounds n to [1, LastPage].
func (p PagedResult[T]) ClampPage(n int) int {
	last := p.LastPage
	if last < 1 {
		last = 1
	}
	if n > last {
		n = last
	}
	if n < 1 {
		n = 1
	}
	return n
}

// IsEmpty reports whether the collection has no items at all.
func (p PagedResult[T]) IsEmpty() bool {
	return p.Total == 0 && len(p.Items) == 0
}

// HasNext reports whether a page follows the current one.
func (p PagedResult[T]) HasNext() bool {
	return p.CurrentPage < p.LastPage
}
