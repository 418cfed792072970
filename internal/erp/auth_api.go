package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginResult is the login response. Unlike every other endpoint, the admin
// profile and token sit at the response root rather than under data.
type LoginResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Admin     Admin  `json:"admin"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType,omitempty"`
	ExpiresIn string `json:"expiresIn,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. A 401 here surfaces as a plain
// API error, not a session teardown; there is no session to tear down yet.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, epLogin, nil, loginRequest{Email: email, Password: password}, true)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return &result, nil
}

// Logout notifies the server. Callers clear the local session regardless of
// the outcome here.
func (c *Client) Logout(ctx context.Context) (*Envelope[json.RawMessage], error) {
	return doEnvelope[json.RawMessage](ctx, c, http.MethodPost, epLogout, nil, nil)
}

// Profile fetches the authenticated admin's profile.
func (c *Client) Profile(ctx context.Context) (*Envelope[Admin], error) {
	return doEnvelope[Admin](ctx, c, http.MethodGet, epProfile, nil, nil)
}
