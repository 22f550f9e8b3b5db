package cli

import (
	"io"
	"time"

	"github.com/aretw0/minuterie/internal/config"
)

// Overrides carries command-line values. Nil fields were not set on the command line
// and leave the loaded configuration alone.
type Overrides struct {
	Period      *time.Duration
	Hold        *time.Duration
	Driver      *string
	HTTPEnabled *bool
	HTTPAddr    *string
	Journal     *string
	LogLevel    *string
	LogFormat   *string
}

// Apply writes every set override into cfg.
func (o Overrides) Apply(cfg *config.Config) {
	set(&cfg.Period, o.Period)
	set(&cfg.Hold, o.Hold)
	set(&cfg.Driver, o.Driver)
	set(&cfg.HTTP.Enabled, o.HTTPEnabled)
	set(&cfg.HTTP.Addr, o.HTTPAddr)
	set(&cfg.Journal.Backend, o.Journal)
	set(&cfg.Log.Level, o.LogLevel)
	set(&cfg.Log.Format, o.LogFormat)
	if o.HTTPAddr != nil && o.HTTPEnabled == nil {
		cfg.HTTP.Enabled = true
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// LoadConfig layers defaults, files, environment and flags, then validates the result.
func LoadConfig(src config.Sources, o Overrides) (config.Config, error) {
	cfg, err := config.Load(src)
	if err != nil {
		return cfg, err
	}
	o.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RunOptions contains the process-level settings of the run command.
type RunOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// MaxTicks stops the loop after that many cycles. Zero runs until cancelled.
	MaxTicks uint64
	// Banner prints the startup banner on Stdout.
	Banner bool
}
