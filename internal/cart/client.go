package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// API is the server contract the store depends on.
type API interface {
	Add(ctx context.Context, req AddRequest) (*Response, error)
	Remove(ctx context.Context, req RemoveRequest) (*Response, error)
}

// TokenSource returns the CSRF token sent with each mutation.
type TokenSource func() string

// StaticToken always returns tok.
func StaticToken(tok string) TokenSource { return func() string { return tok } }

// Client talks to the storefront's /add/ and /remove/ endpoints.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   TokenSource
	Log     *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL string, token TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if token == nil {
		token = StaticToken("")
	}
	return &Client{
		HTTP:    httpClient,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Log:     log,
	}
}

func (c *Client) Add(ctx context.Context, req AddRequest) (*Response, error) {
	return c.post(ctx, "/add/", req.form(c.Token()).Encode())
}

func (c *Client) Remove(ctx context.Context, req RemoveRequest) (*Response, error) {
	return c.post(ctx, "/remove/", req.form(c.Token()).Encode())
}

// post sends a form and decodes the JSON answer. Business rejections come
// back with any status code and are still decoded; only an unreachable
// server or an undecodable body is an ErrTransport.
func (c *Client) post(ctx context.Context, path, body string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build %s: %v", ErrTransport, path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, path, err)
	}
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s (status %d): %v", ErrTransport, path, res.StatusCode, err)
	}
	if out.Cart != nil {
		n := normalize(*out.Cart)
		out.Cart = &n
	}
	if res.StatusCode >= http.StatusBadRequest {
		c.Log.Warn("cart endpoint returned error status",
			zap.String("path", path), zap.Int("status", res.StatusCode), zap.Bool("ok", out.OK))
	}
	return &out, nil
}
