// Package config loads spindash settings from an optional .env file, the
// environment, and an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SourceConfig struct {
	URI        string // mongodb:// URI or a path to a local sqlite archive
	Database   string
	Collection string
}

type UIConfig struct {
	RefreshIntervalSeconds int
	TopN                   int
}

type Config struct {
	Source SourceConfig
	UI     UIConfig
}

// Load resolves the configuration. Environment variables use the SPINDASH_
// prefix (SPINDASH_SOURCE_URI, SPINDASH_UI_TOP_N, ...); MONGO_URI is honored
// as a legacy alias for the source URI. A .env file in the working directory
// is loaded first when present.
func Load() (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("source.uri", "mongodb://localhost:27017")
	v.SetDefault("source.database", "spotify")
	v.SetDefault("source.collection", "songs")
	v.SetDefault("ui.refresh_interval_seconds", 60)
	v.SetDefault("ui.top_n", 10)

	v.SetEnvPrefix("SPINDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("source.uri", "SPINDASH_SOURCE_URI", "MONGO_URI"); err != nil {
		return Config{}, fmt.Errorf("binding source.uri: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Source: SourceConfig{
			URI:        v.GetString("source.uri"),
			Database:   v.GetString("source.database"),
			Collection: v.GetString("source.collection"),
		},
		UI: UIConfig{
			RefreshIntervalSeconds: v.GetInt("ui.refresh_interval_seconds"),
			TopN:                   v.GetInt("ui.top_n"),
		},
	}

	if cfg.UI.RefreshIntervalSeconds <= 0 {
		cfg.UI.RefreshIntervalSeconds = 60
	}
	if cfg.UI.TopN <= 0 {
		cfg.UI.TopN = 10
	}
	return cfg, nil
}
