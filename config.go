package trapmap

import (
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Settings read from TRAPMAP_* environment variables.
type Config struct {
	// Seed for the insertion order of polygon edges. The same seed gives the
	// same decomposition.
	Seed             int64   `envconfig:"SEED" default:"0"`
	Nondeterministic bool    `envconfig:"NONDETERMINISTIC" default:"false"`
	LogLevel         string  `envconfig:"LOG_LEVEL" default:"info"`
	DrawScale        float64 `envconfig:"DRAW_SCALE" default:"40"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("trapmap", &config); err != nil {
		return Config{}, errors.Wrap(err, "loading config")
	}
	return config, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
