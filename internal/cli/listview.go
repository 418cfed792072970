package cli

import "erpctl/internal/erp"

// ListState is what survives of the SPA's entity list tabs: the search
// term, the pagination cursor and the last totals the backend reported.
// Page numbers are clamped against those totals once they are known, and a
// mutation invalidates them so the next fetch re-reads instead of trusting
// stale counts.
type ListState struct {
	Search string
	Page   int
	Limit  int

	known *erp.Page
}

func NewListState(search string, limit int) *ListState {
	return &ListState{
		Search: search,
		Page:   1,
		Limit:  limit,
	}
}

// Goto moves the cursor to page, clamped into [1, TotalPages] when totals
// are known. Before the first fetch there is nothing to clamp against, so
// only the lower bound applies. Returns the page actually selected.
func (s *ListState) Goto(page int) int {
	if page < 1 {
		page = 1
	}
	if s.known != nil && s.known.TotalCount > 0 && page > s.known.TotalPages {
		page = s.known.TotalPages
	}
	s.Page = page
	return s.Page
}

// Observe records the pagination block of a fetched page.
func (s *ListState) Observe(p erp.Page) {
	s.known = &p
	if p.CurrentPage > 0 {
		s.Page = p.CurrentPage
	}
}

// Invalidate forgets the cached totals after a mutation; the caller
// refetches instead of reloading the world.
func (s *ListState) Invalidate() {
	s.known = nil
}

// Known returns the last observed pagination block, or nil before any
// fetch (and after Invalidate).
func (s *ListState) Known() *erp.Page {
	return s.known
}

func (s *ListState) Options() erp.ListOptions {
	return erp.ListOptions{
		Search: s.Search,
		Page:   s.Page,
		Limit:  s.Limit,
	}
}
