package guard

import (
	"github.com/eSolutionsGrup/license-manager/guard/licensing"
	"github.com/eSolutionsGrup/license-manager/guard/log"
)

// Option configures the installation protocol.
type Option func(*config)

// config holds the resolved installation inputs. It is consumed once by
// Install and never retained mutably.
type config struct {
	surface        licensing.Surface
	trustedCallers []string
	logger         log.Logger
	terminator     *licensing.Terminator
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		surface:        licensing.DefaultSurface(),
		trustedCallers: defaultTrustedCallers(),
		logger:         log.NewNop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// defaultTrustedCallers is the baseline trusted runtime boundary: the
// runtime's own namespaces plus this guard's.
func defaultTrustedCallers() []string {
	return []string{
		"runtime",
		"reflect",
		"github.com/eSolutionsGrup/license-manager/guard",
	}
}

// WithLogger sets the logger used for installation decisions. A nil logger
// is ignored.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSurface overrides the licensing collaborator surface. Use when the
// collaborator lives under a different namespace than the shipped default.
func WithSurface(surface licensing.Surface) Option {
	return func(cfg *config) {
		cfg.surface = surface
	}
}

// WithTrustedCallers adds namespace prefixes to the trusted runtime
// boundary consulted by the reflection-unlock rule.
func WithTrustedCallers(namespaces ...string) Option {
	return func(cfg *config) {
		cfg.trustedCallers = append(cfg.trustedCallers, namespaces...)
	}
}

// WithTermination wires a terminator invoked when installation is refused
// and the environment is deemed insecure.
func WithTermination(terminator *licensing.Terminator) Option {
	return func(cfg *config) {
		cfg.terminator = terminator
	}
}
