package authapi

import "time"

// Config points the client at the remote auth API.
type Config struct {
	BaseURL   string        `env:"API_BASE_URL" envDefault:"http://localhost:4741"`
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	RateLimit float64       `env:"API_RATE_LIMIT" envDefault:"20"` // requests per second
	RateBurst int           `env:"API_RATE_BURST" envDefault:"40"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:4741",
		Timeout:   10 * time.Second,
		RateLimit: 20,
		RateBurst: 40,
	}
}
