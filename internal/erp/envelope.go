package erp

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wrapper every backend response follows. The façade hands
// it back unmodified; callers must check Success before touching Data.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Record is the single-item data shape `{data: <record>, message}` used by
// get/create/update endpoints inside the envelope.
type Record[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Page is the pagination block of a list response. The backend emits two
// key sets for the same numbers (totalCount/limit vs totalItems/itemsPerPage);
// both decode into the canonical fields.
type Page struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
	Limit       int `json:"limit"`
}

func (p *Page) UnmarshalJSON(b []byte) error {
	var raw struct {
		CurrentPage  int `json:"currentPage"`
		TotalPages   int `json:"totalPages"`
		TotalCount   int `json:"totalCount"`
		TotalItems   int `json:"totalItems"`
		Limit        int `json:"limit"`
		ItemsPerPage int `json:"itemsPerPage"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.CurrentPage = raw.CurrentPage
	p.TotalPages = raw.TotalPages
	p.TotalCount = raw.TotalCount
	if p.TotalCount == 0 {
		p.TotalCount = raw.TotalItems
	}
	p.Limit = raw.Limit
	if p.Limit == 0 {
		p.Limit = raw.ItemsPerPage
	}
	return nil
}

// ListResult is the canonical paginated result every list call normalizes
// into, regardless of which envelope shape the backend picked.
type ListResult[T any] struct {
	Items []T
	Page  Page
}

// rawList covers both list shapes the backend serves: pagination at the
// response root with data as a bare array, or pagination nested under data
// next to an inner data array.
type rawList struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data"`
	Pagination *Page           `json:"pagination"`
}

type nestedList[T any] struct {
	Data       []T   `json:"data"`
	Pagination *Page `json:"pagination"`
}

// decodeList normalizes a list response body. A payload carrying neither
// pagination shape, or one whose numbers contradict themselves, is a
// contract violation reported as ErrFormat rather than papered over.
func decodeList[T any](body []byte) (*ListResult[T], error) {
	var raw rawList
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !raw.Success {
		msg := raw.Message
		if msg == "" {
			msg = raw.Error
		}
		return nil, fmt.Errorf("%w: list request failed: %s", ErrUnexpected, msg)
	}

	result := &ListResult[T]{}

	switch {
	case raw.Pagination != nil:
		if err := json.Unmarshal(raw.Data, &result.Items); err != nil {
			return nil, fmt.Errorf("%w: list items: %v", ErrFormat, err)
		}
		result.Page = *raw.Pagination
	default:
		var nested nestedList[T]
		if err := json.Unmarshal(raw.Data, &nested); err != nil || nested.Pagination == nil {
			return nil, fmt.Errorf("%w: list response carries no pagination", ErrFormat)
		}
		result.Items = nested.Data
		result.Page = *nested.Pagination
	}

	if err := result.Page.check(len(result.Items)); err != nil {
		return nil, err
	}
	return result, nil
}

// check enforces the pagination invariants: no more items than the page
// size and a current page inside [1, totalPages] whenever anything matched.
func (p Page) check(itemCount int) error {
	if p.Limit > 0 && itemCount > p.Limit {
		return fmt.Errorf("%w: %d items on a page of limit %d", ErrFormat, itemCount, p.Limit)
	}
	if p.TotalCount > 0 && p.CurrentPage > p.TotalPages {
		return fmt.Errorf("%w: page %d of %d reported", ErrFormat, p.CurrentPage, p.TotalPages)
	}
	return nil
}
