package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) ListVendors(ctx context.Context, opts ListOptions) (*ListResult[Vendor], error) {
	return doList[Vendor](ctx, c, epVendors, opts.query())
}

func (c *Client) GetVendor(ctx context.Context, id int) (*Envelope[Record[Vendor]], error) {
	return doEnvelope[Record[Vendor]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epVendors, id), nil, nil)
}

func (c *Client) CreateVendor(ctx context.Context, payload VendorPayload) (*Envelope[Record[Vendor]], error) {
	return doEnvelope[Record[Vendor]](ctx, c, http.MethodPost, epVendors, nil, payload)
}

func (c *Client) UpdateVendor(ctx context.Context, id int, payload VendorPayload) (*Envelope[Record[Vendor]], error) {
	return doEnvelope[Record[Vendor]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epVendors, id), nil, payload)
}

func (c *Client) DeleteVendor(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epVendors, id), nil, nil)
}
