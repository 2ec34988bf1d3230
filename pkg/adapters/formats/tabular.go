package formats

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spectrakit/nmrio/pkg/core"
)

// TabularCodec reads and writes the CSV layout produced by tabular
// tooling: the header row carries the f2 axis, the first column the f1
// axis, and the body the spectrum.
//
// Metadata handling is intentionally one-way: Decode sets fixed derived
// fields (file_format, original_file, data_shape) and Encode drops
// whatever the caller attached. Arbitrary metadata does not survive a
// CSV round-trip.
type TabularCodec struct{}

// Format returns the registry entry for the tabular format.
func (c TabularCodec) Format() core.Format {
	return core.Format{
		Name:       "csv",
		Extensions: []string{".csv"},
		Decoder:    c,
		Encoder:    c,
	}
}

// Decode parses header and index as the frequency axes and the body as
// the spectrum. Non-numeric header, index or body cells fail with
// ErrParse.
func (c TabularCodec) Decode(path string) (*core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrParse, path, err)
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, fmt.Errorf("%w: %s: need a header row and at least one data row", core.ErrParse, path)
	}

	// Header row: corner cell, then the f2 axis.
	axisF2 := make([]float64, len(rows[0])-1)
	for i, cell := range rows[0][1:] {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: header column %d: %w", core.ErrParse, path, i+1, err)
		}
		axisF2[i] = v
	}

	axisF1 := make([]float64, len(rows)-1)
	spectrum := make([][]float64, len(rows)-1)
	for i, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d index: %w", core.ErrParse, path, i+2, err)
		}
		axisF1[i] = v

		values := make([]float64, len(row)-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: row %d column %d: %w", core.ErrParse, path, i+2, j+1, err)
			}
			values[j] = v
		}
		spectrum[i] = values
	}

	meta := core.Metadata{
		"file_format":   "csv",
		"original_file": path,
		"data_shape":    fmt.Sprintf("(%d, %d)", len(spectrum), len(axisF2)),
	}
	return core.NewRecord(spectrum, axisF1, axisF2, meta), nil
}

// Encode is the inverse construction: f1 as row index, f2 as column
// header, spectrum as body. Caller metadata is not persisted.
func (c TabularCodec) Encode(rec *core.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, len(rec.AxisF2)+1)
	for i, v := range rec.AxisF2 {
		header[i+1] = formatFloat(v)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	for i, row := range rec.Spectrum {
		cells := make([]string, len(row)+1)
		cells[0] = formatFloat(rec.AxisF1[i])
		for j, v := range row {
			cells[j+1] = formatFloat(v)
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formatFloat uses the shortest representation that parses back to the
// same float64, keeping text round-trips exact in practice.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
