package erp

import "strconv"

// ListOptions are the common list-query knobs: search term, 1-based page,
// page size, optional sort. Zero values are omitted from the query string;
// the backend applies its own defaults.
type ListOptions struct {
	Search string
	Page   int
	Limit  int
	SortBy string
	Order  string
}

func (o ListOptions) query() map[string]string {
	q := map[string]string{}
	if o.Page > 0 {
		q["page"] = strconv.Itoa(o.Page)
	}
	if o.Limit > 0 {
		q["limit"] = strconv.Itoa(o.Limit)
	}
	if o.Search != "" {
		q["search"] = o.Search
	}
	if o.SortBy != "" {
		q["sortBy"] = o.SortBy
	}
	if o.Order != "" {
		q["order"] = o.Order
	}
	return q
}

// ProductFilter holds the product list's entity-specific filters; nil means
// not filtered.
type ProductFilter struct {
	CategoryID *int
	IsActive   *bool
}

func (f ProductFilter) apply(q map[string]string) {
	if f.CategoryID != nil {
		q["category_id"] = strconv.Itoa(*f.CategoryID)
	}
	if f.IsActive != nil {
		q["is_active"] = strconv.FormatBool(*f.IsActive)
	}
}
