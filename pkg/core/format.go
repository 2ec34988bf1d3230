package core

import (
	"fmt"
	"sort"
)

// Decoder parses a file into a canonical record. Each call opens, fully
// processes and closes its own file handle; no state is shared between
// calls, so independent files may be decoded in parallel by callers.
type Decoder interface {
	Decode(path string) (*Record, error)
}

// Encoder serializes a canonical record to a file.
type Encoder interface {
	Encode(rec *Record, path string) error
}

// Format pairs a decoder and an encoder under a stable name. Encoder may
// be nil for write-never formats (instrument-native acquisition files).
type Format struct {
	// Name identifies the format for encoding requests (e.g. "h5", "csv").
	Name string
	// Extensions lists the file extensions handled by this format,
	// matched case-sensitively and including the leading dot.
	Extensions []string
	Decoder    Decoder
	Encoder    Encoder
}

// Registry maps file extensions and format names to formats. It is
// read-only after construction: Register is called during wiring, never
// concurrently with lookups.
type Registry struct {
	byExt  map[string]Format
	byName map[string]Format
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byExt:  make(map[string]Format),
		byName: make(map[string]Format),
	}
}

// Register adds a format. Registering a name again replaces the
// previous entry wholesale, which is how callers override a built-in
// codec: the old entry's extensions are unmapped first, so an override
// that narrows the extension list leaves no stale dispatch entries.
func (r *Registry) Register(f Format) error {
	if f.Name == "" {
		return fmt.Errorf("format has no name")
	}
	if len(f.Extensions) == 0 {
		return fmt.Errorf("format %q has no extensions", f.Name)
	}
	if f.Decoder == nil {
		return fmt.Errorf("format %q has no decoder", f.Name)
	}
	if prev, ok := r.byName[f.Name]; ok {
		for _, ext := range prev.Extensions {
			if cur, ok := r.byExt[ext]; ok && cur.Name == prev.Name {
				delete(r.byExt, ext)
			}
		}
	}
	r.byName[f.Name] = f
	for _, ext := range f.Extensions {
		r.byExt[ext] = f
	}
	return nil
}

// ByExtension looks up the format for a file extension (with leading dot).
func (r *Registry) ByExtension(ext string) (Format, error) {
	f, ok := r.byExt[ext]
	if !ok {
		return Format{}, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// ByName looks up a format by its name tag.
func (r *Registry) ByName(name string) (Format, error) {
	f, ok := r.byName[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
