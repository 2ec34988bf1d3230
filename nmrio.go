package nmrio

import (
	"log/slog"

	"github.com/spectrakit/nmrio/internal/platform"
	"github.com/spectrakit/nmrio/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Record is a public alias for the canonical record.
type Record = core.Record

// Metadata is a public alias for the record metadata map.
type Metadata = core.Metadata

// Info is a public alias for the introspection summary.
type Info = core.Info

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSyntheticNative makes the instrument-native decoder return
// deterministic placeholder records flagged as synthetic instead of
// failing with core.ErrNotImplemented.
func WithSyntheticNative(enabled bool) Option {
	return platform.WithSyntheticNative(enabled)
}

// WithFormat registers a custom format codec, replacing any built-in
// that claims the same name or extensions.
func WithFormat(f core.Format) Option {
	return platform.WithFormat(f)
}

// --- Factory ---

// New creates a dispatcher service over the default format registry.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}
