package platform

import (
	"log/slog"

	"github.com/spectrakit/nmrio/pkg/core"
)

// options holds the internal configuration for the dispatcher service.
type options struct {
	logger          *slog.Logger
	syntheticNative bool
	formats         []core.Format
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:          nil,
		syntheticNative: false,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSyntheticNative switches the instrument-native decoder from its
// not-implemented failure to deterministic placeholder records flagged
// as synthetic in metadata.
func WithSyntheticNative(enabled bool) Option {
	return func(o *options) {
		o.syntheticNative = enabled
	}
}

// WithFormat registers a custom format, replacing any built-in codec
// that claims the same name or extensions.
func WithFormat(f core.Format) Option {
	return func(o *options) {
		o.formats = append(o.formats, f)
	}
}
