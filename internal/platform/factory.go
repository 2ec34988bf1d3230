// Package platform is the composition root for the nmrio library: it
// parses the functional options and wires the format registry into the
// dispatcher service.
package platform

import (
	"github.com/spectrakit/nmrio/pkg/adapters/formats"
	"github.com/spectrakit/nmrio/pkg/core"
)

// New builds a dispatcher over the default formats plus any custom ones
// from the options.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	registry, err := formats.DefaultRegistry(o.syntheticNative)
	if err != nil {
		return nil, err
	}
	for _, f := range o.formats {
		if err := registry.Register(f); err != nil {
			return nil, err
		}
	}

	return core.NewService(registry, o.logger), nil
}
