package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ListHSNs filters by search term and, when gstRate is non-nil, by exact
// GST rate.
func (c *Client) ListHSNs(ctx context.Context, opts ListOptions, gstRate *float64) (*ListResult[HSN], error) {
	q := opts.query()
	if gstRate != nil {
		q["gst_rate"] = strconv.FormatFloat(*gstRate, 'f', -1, 64)
	}
	return doList[HSN](ctx, c, epHSN, q)
}

func (c *Client) GetHSN(ctx context.Context, id int) (*Envelope[Record[HSN]], error) {
	return doEnvelope[Record[HSN]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epHSN, id), nil, nil)
}

// GetHSNByCode looks an HSN up by its code rather than its id.
func (c *Client) GetHSNByCode(ctx context.Context, hsnNo string) (*Envelope[Record[HSN]], error) {
	return doEnvelope[Record[HSN]](ctx, c, http.MethodGet, fmt.Sprintf("%s/code/%s", epHSN, hsnNo), nil, nil)
}

func (c *Client) CreateHSN(ctx context.Context, payload HSNPayload) (*Envelope[Record[HSN]], error) {
	return doEnvelope[Record[HSN]](ctx, c, http.MethodPost, epHSN, nil, payload)
}

func (c *Client) UpdateHSN(ctx context.Context, id int, payload HSNPayload) (*Envelope[Record[HSN]], error) {
	return doEnvelope[Record[HSN]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epHSN, id), nil, payload)
}

func (c *Client) DeleteHSN(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epHSN, id), nil, nil)
}

// HSNNumbers returns the id/code/rate triples used to populate dropdowns.
func (c *Client) HSNNumbers(ctx context.Context) (*Envelope[[]HSNNumber], error) {
	return doEnvelope[[]HSNNumber](ctx, c, http.MethodGet, epHSN+"/numbers", nil, nil)
}
