package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	CartBaseURL      string
	CSRFToken        string
	SnapshotFile     string
	HTTPTimeout      time.Duration
	NotifyTTL        time.Duration
	ModalOpenDelay   time.Duration
	ModalCloseDelay  time.Duration
	SettleDelay      time.Duration
	PlaceholderImage string
	Currency         string
	CheckoutURL      string
	ShopURL          string
	LogLevel         string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		CartBaseURL:      getenv("CART_BASE_URL", "http://localhost:8000"),
		CSRFToken:        getenv("CART_CSRF_TOKEN", ""),
		SnapshotFile:     getenv("CART_SNAPSHOT_FILE", ""),
		HTTPTimeout:      getduration("CART_HTTP_TIMEOUT", 5*time.Second),
		NotifyTTL:        getduration("CART_NOTIFY_TTL", 2700*time.Millisecond),
		ModalOpenDelay:   getduration("CART_MODAL_OPEN_DELAY", 10*time.Millisecond),
		ModalCloseDelay:  getduration("CART_MODAL_CLOSE_DELAY", 300*time.Millisecond),
		SettleDelay:      getduration("CART_SETTLE_DELAY", 2*time.Second),
		PlaceholderImage: getenv("CART_PLACEHOLDER_IMAGE", "/static/placeholder.jpg"),
		Currency:         getenv("CART_CURRENCY", "EGP"),
		CheckoutURL:      getenv("CART_CHECKOUT_URL", "checkout/"),
		ShopURL:          getenv("CART_SHOP_URL", "/#products"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}

// Log writes the effective settings, minus the token.
func (c Config) Log(log *zap.Logger) {
	log.Info("config",
		zap.String("CART_BASE_URL", c.CartBaseURL),
		zap.String("CART_SNAPSHOT_FILE", c.SnapshotFile),
		zap.Duration("CART_HTTP_TIMEOUT", c.HTTPTimeout),
		zap.Duration("CART_NOTIFY_TTL", c.NotifyTTL),
		zap.Duration("CART_MODAL_CLOSE_DELAY", c.ModalCloseDelay),
		zap.Bool("csrf_token_set", c.CSRFToken != ""),
	)
}
