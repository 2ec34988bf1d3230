// Package nmrio is the public entry point for the nmrio library.
//
// nmrio converts heterogeneous two-dimensional spectral datasets (binary
// container, delimited text, tabular CSV and instrument-native files)
// into one canonical in-memory record, and back out to any writable
// format. Format detection is by file extension; metadata travels
// opaquely with the record.
//
// Usage:
//
//	svc, err := nmrio.New(nmrio.WithLogger(logger))
//	rec, err := svc.Load("experiment.h5")
//	info, err := svc.Info(rec)
//	err = svc.Save(rec, "csv", "experiment.csv")
//
// The layer never interprets spectral content: it validates structural
// shape, carries metadata, and reports typed failures (core.ErrFileNotFound,
// core.ErrUnsupportedFormat, core.ErrParse, ...) to the caller.
package nmrio
