package httpx

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID stamps every outgoing request with an X-Request-ID unless the
// caller already set one.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if r.Header.Get(RequestIDHeader) == "" {
			r = r.Clone(r.Context())
			r.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return next.RoundTrip(r)
	})
}

// Logger logs method, path, status and duration of each request.
func Logger(log *zap.Logger, next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		res, err := next.RoundTrip(r)
		fields := []zap.Field{
			zap.String("rid", r.Header.Get(RequestIDHeader)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("dur", time.Since(start)),
		}
		if err != nil {
			log.Warn("http request failed", append(fields, zap.Error(err))...)
			return nil, err
		}
		log.Debug("http request", append(fields, zap.Int("status", res.StatusCode))...)
		return res, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
