// Package lifecycle bridges the watcher's event channel to the generic
// lifecycle.Source interface, so applications supervising their workers
// with aretw0/lifecycle can consume spectra-file events like any other
// source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/spectrakit/nmrio/pkg/core"
)

type spectraSource struct {
	events <-chan core.Event
	accept map[core.EventType]bool
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits spectra-file events.
// With no types given every event is forwarded; otherwise only events
// of the listed types pass through. An interactive consumer refreshing
// a dataset list typically subscribes to CREATE and DELETE only.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	var accept map[core.EventType]bool
	if len(types) > 0 {
		accept = make(map[core.EventType]bool, len(types))
		for _, et := range types {
			accept[et] = true
		}
	}
	return &spectraSource{
		events: events,
		accept: accept,
		out:    make(chan lifecycle.Event),
	}
}

func (s *spectraSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start launches the bridge goroutine via lifecycle.Go so it is tracked
// by the supervisor. The out channel closes when the upstream watcher
// channel closes or the context is cancelled.
func (s *spectraSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.accept != nil && !s.accept[e.Type] {
					continue
				}
				// core.Event implements lifecycle.Event via String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
