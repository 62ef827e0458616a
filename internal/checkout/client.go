package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var ErrOrderFailed = errors.New("order submission failed")

// Client submits the checkout form to POST /place-order/.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   func() string
	Log     *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL string, token func() string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{HTTP: httpClient, BaseURL: strings.TrimRight(baseURL, "/"), Token: token, Log: log}
}

// Submit posts the form. A 2xx answer is success; if the server redirected,
// the final URL is returned so the host can navigate there.
func (c *Client) Submit(ctx context.Context, f Form) (Receipt, error) {
	target := c.BaseURL + "/place-order/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(f.values(c.Token()).Encode()))
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Receipt{}, fmt.Errorf("%w: %s", ErrOrderFailed, res.Status)
	}
	var out Receipt
	if final := res.Request.URL.String(); final != target {
		out.RedirectURL = final
	}
	c.Log.Info("order submitted", zap.String("redirect", out.RedirectURL))
	return out, nil
}
