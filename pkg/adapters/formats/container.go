package formats

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/spectrakit/nmrio/pkg/core"
)

// containerMagic is the 8-byte signature at the start of every container
// file, in the style of the HDF5 signature (0x89 N M R \r \n 0x1a \n).
// The non-ASCII first byte and the embedded line endings catch text-mode
// corruption early.
var containerMagic = []byte{0x89, 'N', 'M', 'R', '\r', '\n', 0x1a, '\n'}

// containerBody is the CBOR payload following the signature. The three
// dataset fields are pointers so a missing dataset is distinguishable
// from an empty one.
type containerBody struct {
	Spectrum *[][]float64   `cbor:"spectrum"`
	AxisF1   *[]float64     `cbor:"frequencies_f1"`
	AxisF2   *[]float64     `cbor:"frequencies_f2"`
	Attrs    map[string]any `cbor:"attributes"`
}

var containerDecMode, _ = cbor.DecOptions{
	// Decode every integer attribute to int64 so metadata round-trips to
	// a single, comparable Go type.
	IntDec: cbor.IntDecConvertSigned,
}.DecMode()

// ContainerCodec reads and writes the binary container format (.h5-style):
// three named datasets plus a flat attribute set.
type ContainerCodec struct{}

// Format returns the registry entry for the binary container.
func (c ContainerCodec) Format() core.Format {
	return core.Format{
		Name:       "h5",
		Extensions: []string{".h5"},
		Decoder:    c,
		Encoder:    c,
	}
}

// Decode opens the container and extracts the spectrum matrix, both
// frequency axes and the attributes. A missing dataset, a dataset of the
// wrong rank, or a shape mismatch fails with ErrMalformedContainer.
func (c ContainerCodec) Decode(path string) (*core.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read container %s: %w", path, err)
	}

	if !bytes.HasPrefix(data, containerMagic) {
		return nil, fmt.Errorf("%w: %s: bad signature", core.ErrMalformedContainer, path)
	}

	var body containerBody
	if err := containerDecMode.Unmarshal(data[len(containerMagic):], &body); err != nil {
		// A rank-1 spectrum or rank-2 axis fails CBOR decoding into the
		// typed fields and lands here.
		return nil, fmt.Errorf("%w: %s: %v", core.ErrMalformedContainer, path, err)
	}

	switch {
	case body.Spectrum == nil:
		return nil, fmt.Errorf("%w: %s: missing dataset %q", core.ErrMalformedContainer, path, "spectrum")
	case body.AxisF1 == nil:
		return nil, fmt.Errorf("%w: %s: missing dataset %q", core.ErrMalformedContainer, path, "frequencies_f1")
	case body.AxisF2 == nil:
		return nil, fmt.Errorf("%w: %s: missing dataset %q", core.ErrMalformedContainer, path, "frequencies_f2")
	}

	rec := core.NewRecord(*body.Spectrum, *body.AxisF1, *body.AxisF2, core.Metadata(body.Attrs))
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrMalformedContainer, path, err)
	}
	return rec, nil
}

// Encode writes the three datasets under their fixed names and flattens
// the metadata into container-level attributes. Non-scalar metadata
// values are rejected with ErrUnsupportedMetadataType.
//
// Round-trip contract: Decode(Encode(rec)) reproduces spectrum and both
// axes bit-for-bit and every representable metadata entry.
func (c ContainerCodec) Encode(rec *core.Record, path string) error {
	attrs := make(map[string]any, len(rec.Metadata))
	for k, v := range rec.Metadata {
		if !core.ValidMetadataValue(v) {
			return fmt.Errorf("%w: attribute %q has value of type %T", core.ErrUnsupportedMetadataType, k, v)
		}
		attrs[k] = v
	}

	body := containerBody{
		Spectrum: &rec.Spectrum,
		AxisF1:   &rec.AxisF1,
		AxisF2:   &rec.AxisF2,
		Attrs:    attrs,
	}
	payload, err := cbor.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode container %s: %w", path, err)
	}

	var buf bytes.Buffer
	buf.Write(containerMagic)
	buf.Write(payload)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write container %s: %w", path, err)
	}
	return nil
}
