package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "GTFS_PRUNE_CONFIG"

// DefaultBannedAgencies is the exclusion list used when no config file overrides it.
var DefaultBannedAgencies = []string{
	"SNCF",
	"SNCB",
	"FlixBus-de",
	"FlixTrain-de",
	"SBB",
	"U-Bahn München",
	"Österreichische Bundesbahnen",
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Prune: PruneConfig{
			BannedAgencies: append([]string(nil), DefaultBannedAgencies...),
			MatchMode:      MatchAgencyID,
		},
		Tables: TablesConfig{
			Agency:    "agency.txt",
			Routes:    "routes.txt",
			Trips:     "trips.txt",
			StopTimes: "stop_times.txt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadAppConfig reads the YAML file at path over the defaults and validates
// the result. An empty path yields the defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load picks up an optional .env file, then loads the config file named by
// GTFS_PRUNE_CONFIG, if set.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadAppConfig(os.Getenv(EnvConfigPath))
}

// Validate checks cfg against its struct tags.
func Validate(cfg AppConfig) error {
	return validator.New().Struct(cfg)
}
