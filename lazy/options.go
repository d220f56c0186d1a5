package lazy

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
	name   string
}

// Option configures a Chain at construction.
type Option func(*config)

// WithLogger sets the logger receiving debug events about the chain's lifecycle.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithName labels the chain in log events.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
