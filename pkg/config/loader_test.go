package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/pkg/config"
)

type apiConfig struct {
	BaseURL string        `env:"CFG_TEST_API_BASE_URL" envDefault:"http://localhost:4741"`
	Timeout time.Duration `env:"CFG_TEST_API_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_SECRET,required"`
}

type fileConfig struct {
	Name string `env:"CFG_TEST_FROM_FILE"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:4741", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFG_TEST_API_BASE_URL", "https://api.example.com")
		t.Setenv("CFG_TEST_API_TIMEOUT", "3s")

		var cfg apiConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		var first apiConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_API_BASE_URL", "https://changed.example.com")
		var second apiConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)

		config.Reset()
		var third apiConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "https://changed.example.com", third.BaseURL)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[apiConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("CFG_TEST_SECRET", "s3cret")
	config.Reset()
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "s3cret", cfg.Secret)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=from-file\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("CFG_TEST_FROM_FILE") })

		require.NoError(t, config.LoadEnv(path))
		config.Reset()

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
