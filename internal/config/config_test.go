package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 200*time.Millisecond, cfg.Period)
	assert.Equal(t, 4*time.Second, cfg.Hold)
	assert.Equal(t, config.DriverSim, cfg.Driver)
	assert.Equal(t, "GPIO22", cfg.Button.Pin)
	assert.True(t, cfg.Button.ActiveLow)
	assert.Equal(t, "up", cfg.Button.Pull)
	assert.Equal(t, "GPIO21", cfg.Light.Pin)
	assert.False(t, cfg.Light.ActiveLow)
	assert.False(t, cfg.HTTP.Enabled)
	assert.Equal(t, config.JournalNone, cfg.Journal.Backend)
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := config.Load(config.Sources{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "minuterie.yaml", `
period: 100ms
hold: 3s
driver: gpio
light:
  pin: GPIO17
  active_low: true
http:
  enabled: true
journal:
  backend: redis
  stream: hall:events
`)

	cfg, err := config.Load(config.Sources{File: path})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100*time.Millisecond, cfg.Period)
	assert.Equal(t, 3*time.Second, cfg.Hold)
	assert.Equal(t, config.DriverGPIO, cfg.Driver)
	assert.Equal(t, "GPIO17", cfg.Light.Pin)
	assert.True(t, cfg.Light.ActiveLow)
	assert.Equal(t, "GPIO22", cfg.Button.Pin, "absent keys keep their default")
	assert.True(t, cfg.HTTP.Enabled)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	assert.Equal(t, "hall:events", cfg.Journal.Stream)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "typo.yaml", "perod: 100ms\n")
	_, err := config.Load(config.Sources{File: path})
	assert.ErrorContains(t, err, "perod")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.Sources{File: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "minuterie.yaml", "period: 100ms\nhold: 3s\n")
	t.Setenv("MINUTERIE_HOLD", "10s")
	t.Setenv("MINUTERIE_LIGHT_PIN", "GPIO4")
	t.Setenv("MINUTERIE_HTTP_ENABLED", "true")
	t.Setenv("MINUTERIE_JOURNAL_BACKEND", "memory")

	cfg, err := config.Load(config.Sources{File: path})
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.Period, "file value survives when env is unset")
	assert.Equal(t, 10*time.Second, cfg.Hold)
	assert.Equal(t, "GPIO4", cfg.Light.Pin)
	assert.True(t, cfg.HTTP.Enabled)
	assert.Equal(t, config.JournalMemory, cfg.Journal.Backend)
}

func TestLoad_DotEnv(t *testing.T) {
	dotenv := writeFile(t, ".env", "MINUTERIE_DRIVER=console\nMINUTERIE_LOG_LEVEL=debug\n")
	t.Setenv("MINUTERIE_LOG_LEVEL", "warn")
	// godotenv sets variables in the process; make sure they are cleared afterwards.
	t.Setenv("MINUTERIE_DRIVER", "")
	require.NoError(t, os.Unsetenv("MINUTERIE_DRIVER"))

	cfg, err := config.Load(config.Sources{DotEnv: dotenv})
	require.NoError(t, err)

	assert.Equal(t, config.DriverConsole, cfg.Driver)
	assert.Equal(t, "warn", cfg.Log.Level, "the real environment wins over .env")
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	_, err := config.Load(config.Sources{DotEnv: filepath.Join(t.TempDir(), ".env")})
	assert.NoError(t, err)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("MINUTERIE_PERIOD", "fast")
	_, err := config.Load(config.Sources{})
	assert.ErrorContains(t, err, "failed to parse environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		problems []string
	}{
		{
			name:   "Valid",
			mutate: func(*config.Config) {},
		},
		{
			name:     "Non Positive Period",
			mutate:   func(c *config.Config) { c.Period = 0 },
			problems: []string{"period must be positive"},
		},
		{
			name:     "Hold Shorter Than Period",
			mutate:   func(c *config.Config) { c.Hold = 100 * time.Millisecond },
			problems: []string{"hold (100ms) must be at least one period (200ms)"},
		},
		{
			name:     "Unknown Driver",
			mutate:   func(c *config.Config) { c.Driver = "serial" },
			problems: []string{`driver must be one of sim, console, gpio, got "serial"`},
		},
		{
			name: "GPIO Without Pins",
			mutate: func(c *config.Config) {
				c.Driver = config.DriverGPIO
				c.Button.Pin = ""
				c.Light.Pin = ""
				c.Button.Pull = "sideways"
			},
			problems: []string{
				"button.pin is required with the gpio driver",
				"light.pin is required with the gpio driver",
				`button.pull must be up, down or float, got "sideways"`,
			},
		},
		{
			name: "Everything At Once",
			mutate: func(c *config.Config) {
				c.HTTP.Enabled = true
				c.HTTP.Addr = ""
				c.Journal.Backend = "kafka"
				c.Log.Level = "loud"
				c.Log.Format = "xml"
			},
			problems: []string{
				"http.addr is required",
				"journal.backend must be one of none, memory, redis",
				"log.level",
				"log.format must be text or json",
			},
		},
		{
			name: "Redis Journal",
			mutate: func(c *config.Config) {
				c.Journal.Backend = config.JournalRedis
				c.Journal.RedisAddr = ""
				c.Journal.Buffer = 0
			},
			problems: []string{
				"journal.redis_addr is required",
				"journal.buffer must be positive",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if len(tt.problems) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *config.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Problems, len(tt.problems))
			for _, p := range tt.problems {
				assert.Contains(t, err.Error(), p)
			}
		})
	}
}
