// Package formats implements the on-disk codecs for two-dimensional
// spectral datasets: binary container, delimited text, tabular CSV and
// instrument-native acquisition files. Each codec converts between its
// format and the canonical core.Record; the registry wires them up for
// extension-based dispatch.
package formats

import (
	"github.com/spectrakit/nmrio/pkg/core"
)

// DefaultRegistry returns the standard set of formats. syntheticNative
// switches the instrument-native decoder from its ErrNotImplemented stub
// to deterministic placeholder records flagged as synthetic.
func DefaultRegistry(syntheticNative bool) (*core.Registry, error) {
	reg := core.NewRegistry()
	entries := []core.Format{
		ContainerCodec{}.Format(),
		TextCodec{}.Format(),
		TabularCodec{}.Format(),
		NativeCodec{Synthetic: syntheticNative}.Format(),
	}
	for _, f := range entries {
		if err := reg.Register(f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
