package main

import (
	"errors"

	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/authapi"
	"github.com/springmovies/webclient/pkg/clientip"
	"github.com/springmovies/webclient/pkg/config"
	"github.com/springmovies/webclient/pkg/cookie"
	"github.com/springmovies/webclient/pkg/httpserver"
	"github.com/springmovies/webclient/pkg/ratelimiter"
	"github.com/springmovies/webclient/pkg/redis"
	"github.com/springmovies/webclient/pkg/session"
)

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"webclient"`
	LogLevel string `env:"LOG_LEVEL"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{Env: "development", Name: "webclient"}
}

// Config is everything serve needs.
type Config struct {
	App     AppConfig
	HTTP    httpserver.Config
	Proxy   clientip.Config
	Cookie  cookie.Config
	Session session.Config
	Redis   redis.Config
	API     authapi.Config
	Alert   alert.Config
	Submit  ratelimiter.Config
}

func loadConfig() (Config, error) {
	var cfg Config
	err := errors.Join(
		config.Load(&cfg.App),
		config.Load(&cfg.HTTP),
		config.Load(&cfg.Proxy),
		config.Load(&cfg.Cookie),
		config.Load(&cfg.Session),
		config.Load(&cfg.Redis),
		config.Load(&cfg.API),
		config.Load(&cfg.Alert),
		config.Load(&cfg.Submit),
	)
	return cfg, err
}
