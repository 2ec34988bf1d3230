package formats

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spectrakit/nmrio/pkg/core"
)

// Placeholder dimensions for synthetic native records, matching typical
// 2D acquisition sizes.
const (
	syntheticRows = 512
	syntheticCols = 1024
	syntheticSeed = 20120617
)

// NativeCodec handles vendor acquisition files (.nmr, .fid). No real
// parser is available yet, so by default Decode fails with
// ErrNotImplemented carrying the attempted path and format tag.
//
// Synthetic mode is an explicit development aid: Decode returns a
// deterministic placeholder record whose metadata carries
// "synthetic": true, so downstream consumers can never mistake it for
// acquisition data. The format is write-never; there is no encoder.
type NativeCodec struct {
	// Synthetic enables the placeholder record instead of the
	// ErrNotImplemented failure.
	Synthetic bool
}

// Format returns the registry entry for instrument-native files.
func (c NativeCodec) Format() core.Format {
	return core.Format{
		Name:       "nmr",
		Extensions: []string{".nmr", ".fid"},
		Decoder:    c,
	}
}

func (c NativeCodec) Decode(path string) (*core.Record, error) {
	tag := filepath.Ext(path)
	if !c.Synthetic {
		return nil, fmt.Errorf("%w: no parser for instrument-native format %q (%s)",
			core.ErrNotImplemented, tag, path)
	}

	// Deterministic placeholder values; the fixed seed keeps repeated
	// loads identical.
	rng := rand.New(rand.NewSource(syntheticSeed))
	spectrum := make([][]float64, syntheticRows)
	for i := range spectrum {
		row := make([]float64, syntheticCols)
		for j := range row {
			row[j] = rng.Float64()
		}
		spectrum[i] = row
	}

	meta := core.Metadata{
		"file_format":   "nmr",
		"original_file": path,
		"synthetic":     true,
		"note":          "placeholder data: instrument-native parser not implemented",
	}
	return core.NewRecord(spectrum, DefaultAxis(syntheticRows), DefaultAxis(syntheticCols), meta), nil
}
