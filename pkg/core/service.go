package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Service dispatches load and save requests to the registered formats.
// The registry is fixed at construction; all I/O happens inside the
// chosen decoder or encoder. Calls are synchronous and blocking, a
// caller wanting UI responsiveness runs them off the UI thread.
type Service struct {
	registry *Registry
	logger   *slog.Logger

	mu    sync.RWMutex
	loads uint64
	saves uint64
}

// NewService creates a Service over a registry. A nil logger disables
// logging.
func NewService(registry *Registry, logger *slog.Logger) *Service {
	return &Service{registry: registry, logger: logger}
}

// Registry exposes the format registry (read-only).
func (s *Service) Registry() *Registry {
	return s.registry
}

// Load decodes the file at path into a canonical record. The path must
// exist; the existence check runs before the format lookup so a missing
// file never reports ErrUnsupportedFormat.
func (s *Service) Load(path string) (*Record, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	format, err := s.registry.ByExtension(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if s.logger != nil {
		s.logger.Debug("decoding spectrum", "path", path, "format", format.Name)
	}

	rec, err := format.Decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("decoder %q returned invalid record for %s: %w", format.Name, path, err)
	}

	s.mu.Lock()
	s.loads++
	s.mu.Unlock()

	return rec, nil
}

// Save encodes a record to path in the named format. Formats without an
// encoder (instrument-native) yield ErrUnsupportedFormat.
func (s *Service) Save(rec *Record, formatName, path string) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	format, err := s.registry.ByName(formatName)
	if err != nil {
		return err
	}
	if format.Encoder == nil {
		return fmt.Errorf("%w: format %q is read-only", ErrUnsupportedFormat, formatName)
	}

	if s.logger != nil {
		s.logger.Debug("encoding spectrum", "path", path, "format", format.Name)
	}

	if err := format.Encoder.Encode(rec, path); err != nil {
		return err
	}

	s.mu.Lock()
	s.saves++
	s.mu.Unlock()

	return nil
}

// Info computes summary statistics for a record without mutating it.
func (s *Service) Info(rec *Record) (Info, error) {
	return Describe(rec)
}
