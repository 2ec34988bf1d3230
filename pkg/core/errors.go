package core

import "errors"

// Common errors. Every decode/encode failure wraps one of these so callers
// can match with errors.Is; the wrapping adds the offending path or format.
var (
	// ErrFileNotFound is returned when the input path does not exist.
	// The check runs before any format lookup.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned when an extension or format tag is
	// not in the registered set, or when a format has no encoder.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedContainer is returned when a binary container is missing
	// a required dataset or a dataset has the wrong rank or shape.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrParse is returned when text or CSV content cannot be parsed into
	// a rectangular numeric matrix. It wraps the underlying parse cause.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedMetadataType is returned when an encoder is given a
	// metadata value it cannot represent.
	ErrUnsupportedMetadataType = errors.New("unsupported metadata type")

	// ErrEmptyRecord is returned by introspection on a zero-dimension record.
	ErrEmptyRecord = errors.New("empty record")

	// ErrNotImplemented is returned by decoders that have no real parser
	// available, carrying the attempted path and format tag.
	ErrNotImplemented = errors.New("not implemented")
)
