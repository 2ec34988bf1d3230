package core

import (
	"fmt"
	"math"
)

// Metadata represents the flexible key-value pairs attached to a record.
// Values are restricted to scalars (numbers, booleans) and strings; this
// layer never interprets them, it only carries them between formats.
type Metadata map[string]any

// Record is the central entity of the domain: the canonical in-memory
// representation of a two-dimensional spectral dataset. It is agnostic to
// the on-disk format (container, text matrix, CSV, instrument-native).
//
// Spectrum has shape (n1, n2); AxisF1 indexes the first dimension and
// AxisF2 the second. Every decoder guarantees len(AxisF1) == n1 and
// len(AxisF2) == n2, or fails instead of returning a malformed record.
type Record struct {
	Spectrum [][]float64
	AxisF1   []float64
	AxisF2   []float64
	Metadata Metadata
}

// NewRecord constructs a record, copying nothing. Metadata is normalized
// to an empty map so it is never nil.
func NewRecord(spectrum [][]float64, axisF1, axisF2 []float64, meta Metadata) *Record {
	if meta == nil {
		meta = make(Metadata)
	}
	return &Record{
		Spectrum: spectrum,
		AxisF1:   axisF1,
		AxisF2:   axisF2,
		Metadata: meta,
	}
}

// Dims returns the spectrum shape (n1, n2). A record with no rows reports
// n2 == 0 as well.
func (r *Record) Dims() (n1, n2 int) {
	n1 = len(r.Spectrum)
	if n1 > 0 {
		n2 = len(r.Spectrum[0])
	}
	return n1, n2
}

// Validate checks the structural invariants: rectangular spectrum, axis
// lengths matching the spectrum shape, finite values, non-nil metadata.
func (r *Record) Validate() error {
	n1, n2 := r.Dims()
	if n1 == 0 || n2 == 0 {
		return fmt.Errorf("%w: spectrum has shape (%d, %d)", ErrEmptyRecord, n1, n2)
	}
	for i, row := range r.Spectrum {
		if len(row) != n2 {
			return fmt.Errorf("spectrum is not rectangular: row %d has %d values, want %d", i, len(row), n2)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("spectrum value at (%d, %d) is not finite: %v", i, j, v)
			}
		}
	}
	if len(r.AxisF1) != n1 {
		return fmt.Errorf("axis f1 has %d points, spectrum has %d rows", len(r.AxisF1), n1)
	}
	if len(r.AxisF2) != n2 {
		return fmt.Errorf("axis f2 has %d points, spectrum has %d columns", len(r.AxisF2), n2)
	}
	if r.Metadata == nil {
		return fmt.Errorf("metadata must not be nil")
	}
	return nil
}

// Clone returns a deep copy. Records are exclusively owned; callers that
// need an independent copy must clone rather than alias.
func (r *Record) Clone() *Record {
	spectrum := make([][]float64, len(r.Spectrum))
	for i, row := range r.Spectrum {
		spectrum[i] = append([]float64(nil), row...)
	}
	meta := make(Metadata, len(r.Metadata))
	for k, v := range r.Metadata {
		meta[k] = v
	}
	return &Record{
		Spectrum: spectrum,
		AxisF1:   append([]float64(nil), r.AxisF1...),
		AxisF2:   append([]float64(nil), r.AxisF2...),
		Metadata: meta,
	}
}

// ValidMetadataValue reports whether v belongs to the closed set of value
// kinds every encoder can represent: numbers, booleans and strings.
// Encoders reject anything else with ErrUnsupportedMetadataType.
func ValidMetadataValue(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
