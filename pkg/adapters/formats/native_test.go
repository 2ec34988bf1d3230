package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/spectrakit/nmrio/pkg/core"
)

func TestNativeCodec_NotImplemented(t *testing.T) {
	rec, err := NativeCodec{}.Decode("/data/run42.fid")
	if !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("want ErrNotImplemented, got %v", err)
	}
	if rec != nil {
		t.Fatal("stub decoder returned a record")
	}
	// The failure names the attempted path and format tag.
	if !strings.Contains(err.Error(), "/data/run42.fid") || !strings.Contains(err.Error(), ".fid") {
		t.Errorf("error does not carry path and tag: %v", err)
	}
}

func TestNativeCodec_Synthetic(t *testing.T) {
	codec := NativeCodec{Synthetic: true}

	rec, err := codec.Decode("/data/run42.nmr")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n1, n2 := rec.Dims(); n1 != syntheticRows || n2 != syntheticCols {
		t.Errorf("dims = (%d, %d), want (%d, %d)", n1, n2, syntheticRows, syntheticCols)
	}
	if err := rec.Validate(); err != nil {
		t.Errorf("synthetic record invalid: %v", err)
	}

	// Fabricated data must be unmistakable.
	if rec.Metadata["synthetic"] != true {
		t.Error("synthetic record is not flagged in metadata")
	}
	if rec.Metadata["original_file"] != "/data/run42.nmr" {
		t.Errorf("original_file = %v", rec.Metadata["original_file"])
	}

	// Deterministic: a second decode yields identical values.
	again, err := codec.Decode("/data/run42.nmr")
	if err != nil {
		t.Fatal(err)
	}
	if again.Spectrum[100][200] != rec.Spectrum[100][200] {
		t.Error("synthetic data is not deterministic across loads")
	}
}

func TestNativeCodec_NoEncoder(t *testing.T) {
	if (NativeCodec{}).Format().Encoder != nil {
		t.Fatal("instrument-native format must be write-never")
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg, err := DefaultRegistry(false)
	if err != nil {
		t.Fatalf("DefaultRegistry failed: %v", err)
	}

	for _, ext := range []string{".h5", ".txt", ".dat", ".csv", ".nmr", ".fid"} {
		if _, err := reg.ByExtension(ext); err != nil {
			t.Errorf("extension %q not registered: %v", ext, err)
		}
	}
	if _, err := reg.ByExtension(".xyz"); !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat for .xyz, got %v", err)
	}

	names := reg.Names()
	want := []string{"csv", "h5", "nmr", "txt"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}
