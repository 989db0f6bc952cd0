package sim

import "github.com/rs/zerolog"

// Option customizes a Generator at construction time.
type Option func(*Generator)

// WithLogger attaches a logger used for the §4.6 degenerate-topology
// warning. Omit it to keep the Generator silent (zerolog.Nop()).
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}
