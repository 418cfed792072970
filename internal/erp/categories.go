package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) ListCategories(ctx context.Context, opts ListOptions) (*ListResult[Category], error) {
	return doList[Category](ctx, c, epCategories, opts.query())
}

func (c *Client) GetCategory(ctx context.Context, id int) (*Envelope[Record[Category]], error) {
	return doEnvelope[Record[Category]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epCategories, id), nil, nil)
}

func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (*Envelope[Record[Category]], error) {
	return doEnvelope[Record[Category]](ctx, c, http.MethodPost, epCategories, nil, payload)
}

func (c *Client) UpdateCategory(ctx context.Context, id int, payload CategoryPayload) (*Envelope[Record[Category]], error) {
	return doEnvelope[Record[Category]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epCategories, id), nil, payload)
}

func (c *Client) DeleteCategory(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epCategories, id), nil, nil)
}

// AllCategories returns every active category joined with its HSN details,
// unpaginated.
func (c *Client) AllCategories(ctx context.Context) (*Envelope[[]CategoryWithHSN], error) {
	return doEnvelope[[]CategoryWithHSN](ctx, c, http.MethodGet, epCategories+"/all", nil, nil)
}
