package stockpile

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultMaxEntities is the entity id space used when Config.MaxEntities is
// unset. Ids are drawn from [1, MaxEntities).
const DefaultMaxEntities = 4096

// Config holds construction-time configuration for a registry.
type Config struct {
	// MaxEntities caps the number of simultaneously live entities.
	MaxEntities int

	logger    zerolog.Logger
	loggerSet bool
}

// WithLogger returns a copy of the config using the given diagnostic sink.
// Diagnostics never affect control flow; without a sink they are discarded.
func (c Config) WithLogger(logger zerolog.Logger) Config {
	c.logger = logger
	c.loggerSet = true
	return c
}

func (c Config) withDefaults() Config {
	if c.MaxEntities <= 0 {
		c.MaxEntities = DefaultMaxEntities
	}
	if !c.loggerSet {
		c.logger = zerolog.Nop()
	}
	return c
}

// ConfigFromEnv builds a Config from STOCKPILE_MAX_ENTITIES and
// STOCKPILE_LOG_LEVEL, falling back to defaults for unset or malformed
// values. Any valid zerolog level enables console diagnostics on stderr.
func ConfigFromEnv() Config {
	cfg := Config{}
	if n, err := strconv.Atoi(getEnv("STOCKPILE_MAX_ENTITIES", "")); err == nil && n > 0 {
		cfg.MaxEntities = n
	}
	if lvl, err := zerolog.ParseLevel(getEnv("STOCKPILE_LOG_LEVEL", "")); err == nil && lvl != zerolog.NoLevel {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(lvl).
			With().Timestamp().Logger()
		cfg = cfg.WithLogger(logger)
	}
	return cfg.withDefaults()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
