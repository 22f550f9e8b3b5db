package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Sources names the files Load reads. Empty paths are skipped.
type Sources struct {
	// File is a YAML configuration file. It must exist when set.
	File string
	// DotEnv is a .env file. A missing file is ignored.
	DotEnv string
}

// Load builds the configuration from defaults, the YAML file, the .env file and the
// environment. It does not validate; call Validate after applying flag overrides.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.File != "" {
		if err := decodeFile(src.File, &cfg); err != nil {
			return cfg, err
		}
	}

	if src.DotEnv != "" {
		if err := godotenv.Load(src.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", src.DotEnv, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if raw == nil {
		return nil
	}

	return Decode(raw, cfg)
}

// Decode applies a generic map (as produced by a YAML or JSON decoder) onto cfg.
// Keys absent from raw keep their current value; unknown keys are an error.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}
