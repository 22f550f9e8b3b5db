package config

import (
	"fmt"
	"strings"

	"github.com/aretw0/minuterie/internal/logging"
)

// ValidationError lists every invalid setting.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the whole configuration and reports every problem at once.
func (c Config) Validate() error {
	var p []string
	add := func(format string, args ...any) {
		p = append(p, fmt.Sprintf(format, args...))
	}

	if c.Period <= 0 {
		add("period must be positive, got %s", c.Period)
	} else if c.Hold < c.Period {
		add("hold (%s) must be at least one period (%s)", c.Hold, c.Period)
	}

	switch c.Driver {
	case DriverSim, DriverConsole:
	case DriverGPIO:
		if c.Button.Pin == "" {
			add("button.pin is required with the gpio driver")
		}
		if c.Light.Pin == "" {
			add("light.pin is required with the gpio driver")
		}
		switch strings.ToLower(c.Button.Pull) {
		case "", "default", "up", "down", "float", "none":
		default:
			add("button.pull must be up, down or float, got %q", c.Button.Pull)
		}
	default:
		add("driver must be one of sim, console, gpio, got %q", c.Driver)
	}

	if c.HTTP.Enabled && c.HTTP.Addr == "" {
		add("http.addr is required when http is enabled")
	}

	switch c.Journal.Backend {
	case JournalNone, "":
	case JournalMemory:
		if c.Journal.Size <= 0 {
			add("journal.size must be positive, got %d", c.Journal.Size)
		}
	case JournalRedis:
		if c.Journal.RedisAddr == "" {
			add("journal.redis_addr is required with the redis journal")
		}
		if c.Journal.Stream == "" {
			add("journal.stream is required with the redis journal")
		}
	default:
		add("journal.backend must be one of none, memory, redis, got %q", c.Journal.Backend)
	}
	if c.Journal.Backend != JournalNone && c.Journal.Backend != "" && c.Journal.Buffer <= 0 {
		add("journal.buffer must be positive, got %d", c.Journal.Buffer)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		add("log.level: %v", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		add("log.format must be text or json, got %q", c.Log.Format)
	}

	if len(p) > 0 {
		return &ValidationError{Problems: p}
	}
	return nil
}
