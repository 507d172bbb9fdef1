package starship

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	logger *zap.Logger
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		logger: nil,
	}
}

// WithLogger sets the logger for the formatter.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}
