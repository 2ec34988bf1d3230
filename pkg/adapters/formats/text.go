package formats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spectrakit/nmrio/pkg/core"
)

// TextCodec reads and writes whitespace-delimited numeric matrices
// (.txt, .dat). The format carries no axis information: both axes are
// synthesized over the default range on decode and dropped on encode.
// This asymmetry is deliberate and part of the format contract, not a
// defect to be fixed here.
//
// Metadata travels in a sidecar file sharing the base name: a .json
// sidecar is written on encode; .json, .yaml and .yml are accepted on
// decode. No sidecar means empty metadata.
type TextCodec struct{}

// Format returns the registry entry for the delimited-text format.
func (c TextCodec) Format() core.Format {
	return core.Format{
		Name:       "txt",
		Extensions: []string{".txt", ".dat"},
		Decoder:    c,
		Encoder:    c,
	}
}

// Decode parses the file as a rectangular numeric matrix, picks up the
// sidecar metadata if present, and synthesizes both frequency axes.
func (c TextCodec) Decode(path string) (*core.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var spectrum [][]float64
	width := -1
	for lineNo, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: %s: line %d has %d values, want %d",
				core.ErrParse, path, lineNo+1, len(fields), width)
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: line %d: %w", core.ErrParse, path, lineNo+1, err)
			}
			row[i] = v
		}
		spectrum = append(spectrum, row)
	}
	if len(spectrum) == 0 {
		return nil, fmt.Errorf("%w: %s: no numeric data", core.ErrParse, path)
	}

	meta, err := readSidecar(path)
	if err != nil {
		return nil, err
	}

	n1, n2 := len(spectrum), len(spectrum[0])
	return core.NewRecord(spectrum, DefaultAxis(n1), DefaultAxis(n2), meta), nil
}

// Encode writes the spectrum as a plain numeric matrix and, when the
// record carries metadata, a .json sidecar next to it. Axes are not
// persisted.
func (c TextCodec) Encode(rec *core.Record, path string) error {
	var sb strings.Builder
	for _, row := range rec.Spectrum {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if len(rec.Metadata) == 0 {
		return nil
	}
	payload, err := json.MarshalIndent(rec.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sidecar for %s: %w", path, err)
	}
	sidecar := sidecarBase(path) + ".json"
	if err := os.WriteFile(sidecar, payload, 0644); err != nil {
		return fmt.Errorf("write sidecar %s: %w", sidecar, err)
	}
	return nil
}

// sidecarBase strips the extension so probe.txt pairs with probe.json.
func sidecarBase(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// readSidecar loads metadata from the first sidecar found next to path.
// Absence is not an error; a present but unparseable sidecar is.
func readSidecar(path string) (core.Metadata, error) {
	base := sidecarBase(path)
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		sidecar := base + ext
		data, err := os.ReadFile(sidecar)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read sidecar %s: %w", sidecar, err)
		}

		meta := make(core.Metadata)
		if ext == ".json" {
			err = json.Unmarshal(data, &meta)
		} else {
			err = yaml.Unmarshal(data, &meta)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: sidecar %s: %w", core.ErrParse, sidecar, err)
		}
		return meta, nil
	}
	return core.Metadata{}, nil
}
