package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) ListProducts(ctx context.Context, opts ListOptions, filter ProductFilter) (*ListResult[Product], error) {
	q := opts.query()
	filter.apply(q)
	return doList[Product](ctx, c, epProducts, q)
}

func (c *Client) GetProduct(ctx context.Context, id int) (*Envelope[Record[Product]], error) {
	return doEnvelope[Record[Product]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epProducts, id), nil, nil)
}

func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*Envelope[Record[Product]], error) {
	return doEnvelope[Record[Product]](ctx, c, http.MethodPost, epProducts, nil, payload)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, payload ProductPayload) (*Envelope[Record[Product]], error) {
	return doEnvelope[Record[Product]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epProducts, id), nil, payload)
}

// DeleteProduct soft-deletes: the record stays with is_active=false.
func (c *Client) DeleteProduct(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epProducts, id), nil, nil)
}

// DeleteProductPermanent removes the row for good.
func (c *Client) DeleteProductPermanent(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d/permanent", epProducts, id), nil, nil)
}

// AllProductDetails returns every product with its category and GST rate,
// unpaginated, for stock entry.
func (c *Client) AllProductDetails(ctx context.Context) (*Envelope[[]ProductDetail], error) {
	return doEnvelope[[]ProductDetail](ctx, c, http.MethodGet, epProducts+"/all-details", nil, nil)
}
