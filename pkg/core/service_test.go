package core_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spectrakit/nmrio/pkg/core"
)

// memCodec implements core.Decoder and core.Encoder in memory.
type memCodec struct {
	rec     *core.Record
	decoded []string
	encoded []string
}

func (m *memCodec) Decode(path string) (*core.Record, error) {
	m.decoded = append(m.decoded, path)
	return m.rec.Clone(), nil
}

func (m *memCodec) Encode(rec *core.Record, path string) error {
	m.encoded = append(m.encoded, path)
	return nil
}

func testRecord() *core.Record {
	return core.NewRecord(
		[][]float64{{1, 2}, {3, 4}},
		[]float64{0, 1},
		[]float64{0, 1},
		nil,
	)
}

func newTestService(t *testing.T, codec *memCodec) *core.Service {
	t.Helper()
	reg := core.NewRegistry()
	err := reg.Register(core.Format{
		Name:       "mem",
		Extensions: []string{".mem"},
		Decoder:    codec,
		Encoder:    codec,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return core.NewService(reg, nil)
}

func TestService_Load(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	svc := newTestService(t, codec)

	dir := t.TempDir()
	path := filepath.Join(dir, "probe.mem")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n1, n2 := rec.Dims(); n1 != 2 || n2 != 2 {
		t.Errorf("dims = (%d, %d), want (2, 2)", n1, n2)
	}
	if len(codec.decoded) != 1 || codec.decoded[0] != path {
		t.Errorf("decoder saw %v", codec.decoded)
	}
}

func TestService_Load_FileNotFound(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	svc := newTestService(t, codec)

	// Unknown extension AND missing file: the existence check must win.
	_, err := svc.Load(filepath.Join(t.TempDir(), "missing.xyz"))
	if !errors.Is(err, core.ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
	if len(codec.decoded) != 0 {
		t.Error("decoder ran for a missing file")
	}
}

func TestService_Load_UnsupportedFormat(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	svc := newTestService(t, codec)

	dir := t.TempDir()
	path := filepath.Join(dir, "probe.xyz")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Load(path)
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestService_Save(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	svc := newTestService(t, codec)

	path := filepath.Join(t.TempDir(), "out.mem")
	if err := svc.Save(testRecord(), "mem", path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(codec.encoded) != 1 {
		t.Errorf("encoder saw %v", codec.encoded)
	}

	if err := svc.Save(testRecord(), "nope", path); !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestService_Save_ReadOnlyFormat(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	reg := core.NewRegistry()
	if err := reg.Register(core.Format{
		Name:       "native",
		Extensions: []string{".fid"},
		Decoder:    codec,
	}); err != nil {
		t.Fatal(err)
	}
	svc := core.NewService(reg, nil)

	err := svc.Save(testRecord(), "native", filepath.Join(t.TempDir(), "out.fid"))
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat for encoder-less format, got %v", err)
	}
}

func TestService_State(t *testing.T) {
	codec := &memCodec{rec: testRecord()}
	svc := newTestService(t, codec)

	state, ok := svc.State().(core.ServiceState)
	if !ok {
		t.Fatalf("State returned %T", svc.State())
	}
	if len(state.Formats) != 1 || state.Formats[0] != "mem" {
		t.Errorf("formats = %v", state.Formats)
	}
	if svc.ComponentType() != "dispatcher" {
		t.Errorf("component type = %q", svc.ComponentType())
	}
}
