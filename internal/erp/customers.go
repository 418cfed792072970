package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) ListCustomers(ctx context.Context, opts ListOptions) (*ListResult[Customer], error) {
	return doList[Customer](ctx, c, epCustomers, opts.query())
}

func (c *Client) GetCustomer(ctx context.Context, id int) (*Envelope[Record[Customer]], error) {
	return doEnvelope[Record[Customer]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epCustomers, id), nil, nil)
}

func (c *Client) CreateCustomer(ctx context.Context, payload CustomerPayload) (*Envelope[Record[Customer]], error) {
	return doEnvelope[Record[Customer]](ctx, c, http.MethodPost, epCustomers, nil, payload)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, payload CustomerPayload) (*Envelope[Record[Customer]], error) {
	return doEnvelope[Record[Customer]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epCustomers, id), nil, payload)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epCustomers, id), nil, nil)
}

// AllCustomers returns every active customer, unpaginated, for invoice
// customer pickers.
func (c *Client) AllCustomers(ctx context.Context) (*Envelope[[]Customer], error) {
	return doEnvelope[[]Customer](ctx, c, http.MethodGet, epCustomers+"/all", nil, nil)
}
