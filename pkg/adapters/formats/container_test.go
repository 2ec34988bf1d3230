package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/spectrakit/nmrio/pkg/core"
)

func sampleRecord() *core.Record {
	return core.NewRecord(
		[][]float64{{1.5, -2.25, 3.125}, {4, 5, 6.0625}},
		[]float64{0, 1},
		[]float64{0, 1, 2},
		core.Metadata{
			"sample":      "sucrose",
			"nucleus":     "1H",
			"scans":       int64(16),
			"temperature": 298.15,
			"locked":      true,
		},
	)
}

func TestContainerCodec_RoundTrip(t *testing.T) {
	codec := ContainerCodec{}
	rec := sampleRecord()
	path := filepath.Join(t.TempDir(), "probe.h5")

	if err := codec.Encode(rec, path); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := codec.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// Bit-for-bit on the datasets.
	for i := range rec.Spectrum {
		for j := range rec.Spectrum[i] {
			if got.Spectrum[i][j] != rec.Spectrum[i][j] {
				t.Fatalf("spectrum[%d][%d] = %v, want %v", i, j, got.Spectrum[i][j], rec.Spectrum[i][j])
			}
		}
	}
	for i := range rec.AxisF1 {
		if got.AxisF1[i] != rec.AxisF1[i] {
			t.Fatalf("axis f1[%d] = %v, want %v", i, got.AxisF1[i], rec.AxisF1[i])
		}
	}
	for i := range rec.AxisF2 {
		if got.AxisF2[i] != rec.AxisF2[i] {
			t.Fatalf("axis f2[%d] = %v, want %v", i, got.AxisF2[i], rec.AxisF2[i])
		}
	}

	// Every representable metadata entry survives.
	if len(got.Metadata) != len(rec.Metadata) {
		t.Fatalf("metadata has %d entries, want %d", len(got.Metadata), len(rec.Metadata))
	}
	for k, want := range rec.Metadata {
		if got.Metadata[k] != want {
			t.Errorf("metadata[%q] = %#v, want %#v", k, got.Metadata[k], want)
		}
	}
}

func TestContainerCodec_Encode_UnsupportedMetadata(t *testing.T) {
	codec := ContainerCodec{}
	rec := sampleRecord()
	rec.Metadata["peaks"] = []float64{1, 2}

	err := codec.Encode(rec, filepath.Join(t.TempDir(), "probe.h5"))
	if !errors.Is(err, core.ErrUnsupportedMetadataType) {
		t.Fatalf("want ErrUnsupportedMetadataType, got %v", err)
	}
}

// writeRawContainer builds a container directly from a CBOR map, for
// malformed-file cases the encoder refuses to produce.
func writeRawContainer(t *testing.T, body map[string]any) string {
	t.Helper()
	payload, err := cbor.Marshal(body)
	if err != nil {
		t.Fatalf("marshal raw container: %v", err)
	}
	path := filepath.Join(t.TempDir(), "raw.h5")
	if err := os.WriteFile(path, append(append([]byte{}, containerMagic...), payload...), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestContainerCodec_Decode_Malformed(t *testing.T) {
	codec := ContainerCodec{}

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			"missing f2 axis",
			map[string]any{
				"spectrum":       [][]float64{{1, 2}, {3, 4}},
				"frequencies_f1": []float64{0, 1},
			},
		},
		{
			"missing spectrum",
			map[string]any{
				"frequencies_f1": []float64{0, 1},
				"frequencies_f2": []float64{0, 1},
			},
		},
		{
			"spectrum rank 1",
			map[string]any{
				"spectrum":       []float64{1, 2, 3, 4},
				"frequencies_f1": []float64{0, 1},
				"frequencies_f2": []float64{0, 1},
			},
		},
		{
			"axis rank 2",
			map[string]any{
				"spectrum":       [][]float64{{1, 2}, {3, 4}},
				"frequencies_f1": [][]float64{{0, 1}},
				"frequencies_f2": []float64{0, 1},
			},
		},
		{
			"axis length mismatch",
			map[string]any{
				"spectrum":       [][]float64{{1, 2}, {3, 4}},
				"frequencies_f1": []float64{0, 1, 2},
				"frequencies_f2": []float64{0, 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeRawContainer(t, tc.body)
			rec, err := codec.Decode(path)
			if !errors.Is(err, core.ErrMalformedContainer) {
				t.Fatalf("want ErrMalformedContainer, got %v", err)
			}
			if rec != nil {
				t.Fatal("malformed container returned a partial record")
			}
		})
	}
}

func TestContainerCodec_Decode_BadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notacontainer.h5")
	if err := os.WriteFile(path, []byte("plain text, not a container"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ContainerCodec{}.Decode(path)
	if !errors.Is(err, core.ErrMalformedContainer) {
		t.Fatalf("want ErrMalformedContainer, got %v", err)
	}
}
