package httpx

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// NewClient builds the *http.Client shared by the cart and checkout clients.
func NewClient(timeout time.Duration, log *zap.Logger) *http.Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: RequestID(Logger(log, http.DefaultTransport)),
	}
}
