package alert

import "time"

const (
	DefaultHideDelay   = 5000 * time.Millisecond
	DefaultRemoveDelay = 300 * time.Millisecond
)

// Config holds queue timings and registry housekeeping settings.
type Config struct {
	HideDelay     time.Duration `env:"ALERT_HIDE_DELAY" envDefault:"5s"`
	RemoveDelay   time.Duration `env:"ALERT_REMOVE_DELAY" envDefault:"300ms"`
	StreamBuffer  int           `env:"ALERT_STREAM_BUFFER" envDefault:"32"`
	IdleTTL       time.Duration `env:"ALERT_IDLE_TTL" envDefault:"30m"`
	PruneInterval time.Duration `env:"ALERT_PRUNE_INTERVAL" envDefault:"1m"`
}

func DefaultConfig() Config {
	return Config{
		HideDelay:     DefaultHideDelay,
		RemoveDelay:   DefaultRemoveDelay,
		StreamBuffer:  32,
		IdleTTL:       30 * time.Minute,
		PruneInterval: time.Minute,
	}
}
