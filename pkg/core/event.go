package core

import "fmt"

// EventType represents the type of change observed in a data directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a spectra file under a watched directory.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so watcher events can be bridged to a
// lifecycle source.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
