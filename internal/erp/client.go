package erp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"erpctl/internal/config"
	"erpctl/internal/session"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client talks to the ERP backend. One instance is shared by every façade
// call; the bearer token is read from the session store per request so a
// login or forced logout takes effect immediately.
type Client struct {
	http   *resty.Client
	store  *session.Store
	logger *zap.Logger
}

func NewClient(cfg config.Config, store *session.Store, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{
		http:   httpClient,
		store:  store,
		logger: logger.Named("erp"),
	}
}

// SetBaseURL points the client at a different backend. Used by the CLI
// when a flag overrides the configured URL.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// SetTimeout replaces the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.SetTimeout(d)
}

// do issues one request and applies the response policy: JSON content type
// required, non-2xx mapped to the error taxonomy, 401 outside login tears
// down the session before propagating. Exactly one network call per
// invocation; retries are the caller's business.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body any, isLogin bool) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if token := c.store.Token(); token != "" {
		req.SetAuthScheme("Bearer")
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
	)

	contentType := resp.Header().Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("%w: content-type %q", ErrFormat, contentType)
	}

	if resp.IsError() {
		return nil, c.errorFromResponse(resp, isLogin)
	}
	return resp.Body(), nil
}

func (c *Client) errorFromResponse(resp *resty.Response, isLogin bool) error {
	msg := envelopeMessage(resp.Body())

	if resp.StatusCode() == http.StatusUnauthorized && !isLogin {
		c.store.Clear()
		if msg == "" {
			msg = "session expired, please login again"
		}
		return fmt.Errorf("%w: %s", ErrAuthExpired, msg)
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Message:    msg,
	}
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnexpected, err)
}

// envelopeMessage pulls the server's message out of an error body when the
// body is a well-formed envelope; a blank string otherwise.
func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

// doEnvelope runs a request and decodes the standard envelope around T.
func doEnvelope[T any](ctx context.Context, c *Client, method, path string, query map[string]string, body any) (*Envelope[T], error) {
	raw, err := c.do(ctx, method, path, query, body, false)
	if err != nil {
		return nil, err
	}

	var env Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return &env, nil
}

// doList runs a GET and normalizes either list shape into a ListResult.
func doList[T any](ctx context.Context, c *Client, path string, query map[string]string) (*ListResult[T], error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}
