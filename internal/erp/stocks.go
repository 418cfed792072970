package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) ListStocks(ctx context.Context, opts ListOptions) (*ListResult[ProductStock], error) {
	return doList[ProductStock](ctx, c, epStocks, opts.query())
}

func (c *Client) GetStock(ctx context.Context, id int) (*Envelope[Record[ProductStock]], error) {
	return doEnvelope[Record[ProductStock]](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", epStocks, id), nil, nil)
}

func (c *Client) CreateStock(ctx context.Context, payload ProductStockPayload) (*Envelope[Record[ProductStock]], error) {
	return doEnvelope[Record[ProductStock]](ctx, c, http.MethodPost, epStocks, nil, payload)
}

func (c *Client) UpdateStock(ctx context.Context, id int, payload ProductStockUpdate) (*Envelope[Record[ProductStock]], error) {
	return doEnvelope[Record[ProductStock]](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", epStocks, id), nil, payload)
}

func (c *Client) DeleteStock(ctx context.Context, id int) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("%s/%d", epStocks, id), nil, nil)
}

// GenerateBarcode asks the server for the next barcode in the product's
// sequence.
func (c *Client) GenerateBarcode(ctx context.Context, productID int) (*Envelope[BarcodeGeneration], error) {
	return doEnvelope[BarcodeGeneration](ctx, c, http.MethodGet, fmt.Sprintf("%s/generate-barcode/%d", epStocks, productID), nil, nil)
}
