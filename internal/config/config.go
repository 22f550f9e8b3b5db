// Package config loads the controller configuration.
//
// Sources are layered, later ones winning: built-in defaults, a YAML file, a .env file,
// the process environment (MINUTERIE_ prefix) and finally command-line flags, which the
// CLI applies on the returned value before calling Validate.
package config

import "time"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MINUTERIE_"

// Drivers.
const (
	DriverSim     = "sim"
	DriverConsole = "console"
	DriverGPIO    = "gpio"
)

// Journal backends.
const (
	JournalNone   = "none"
	JournalMemory = "memory"
	JournalRedis  = "redis"
)

// Config is the full controller configuration.
type Config struct {
	// Period is the control loop cadence.
	Period time.Duration `mapstructure:"period" env:"PERIOD"`
	// Hold is how long the light stays on after the last press.
	Hold time.Duration `mapstructure:"hold" env:"HOLD"`
	// Driver selects the I/O: sim, console or gpio.
	Driver string `mapstructure:"driver" env:"DRIVER"`

	Button  LineConfig    `mapstructure:"button" envPrefix:"BUTTON_"`
	Light   LineConfig    `mapstructure:"light" envPrefix:"LIGHT_"`
	HTTP    HTTPConfig    `mapstructure:"http" envPrefix:"HTTP_"`
	Journal JournalConfig `mapstructure:"journal" envPrefix:"JOURNAL_"`
	Log     LogConfig     `mapstructure:"log" envPrefix:"LOG_"`
}

// LineConfig describes a GPIO line.
type LineConfig struct {
	Pin       string `mapstructure:"pin" env:"PIN"`
	ActiveLow bool   `mapstructure:"active_low" env:"ACTIVE_LOW"`
	Pull      string `mapstructure:"pull" env:"PULL"`
}

// HTTPConfig controls the status API.
type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled" env:"ENABLED"`
	Addr    string `mapstructure:"addr" env:"ADDR"`
}

// JournalConfig controls where transition events are kept.
type JournalConfig struct {
	Backend string `mapstructure:"backend" env:"BACKEND"`
	// Size is the capacity of the memory journal and the stream cap for Redis.
	Size          int    `mapstructure:"size" env:"SIZE"`
	Buffer        int    `mapstructure:"buffer" env:"BUFFER"`
	RedisAddr     string `mapstructure:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"redis_db" env:"REDIS_DB"`
	Stream        string `mapstructure:"stream" env:"STREAM"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `mapstructure:"level" env:"LEVEL"`
	Format string `mapstructure:"format" env:"FORMAT"`
}

// Default returns the built-in configuration: a 200ms loop holding the light for 4s,
// button on GPIO22 (active low, pulled up), light on GPIO21, simulated I/O.
func Default() Config {
	return Config{
		Period: 200 * time.Millisecond,
		Hold:   4 * time.Second,
		Driver: DriverSim,
		Button: LineConfig{Pin: "GPIO22", ActiveLow: true, Pull: "up"},
		Light:  LineConfig{Pin: "GPIO21"},
		HTTP:   HTTPConfig{Addr: "127.0.0.1:8080"},
		Journal: JournalConfig{
			Backend:   JournalNone,
			Size:      1000,
			Buffer:    64,
			RedisAddr: "localhost:6379",
			Stream:    "minuterie:transitions",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}
