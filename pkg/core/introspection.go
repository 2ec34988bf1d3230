package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Formats    []string `json:"formats"`
	Extensions []string `json:"extensions"`
	Loads      uint64   `json:"loads"`
	Saves      uint64   `json:"saves"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ServiceState{
		Formats:    s.registry.Names(),
		Extensions: s.registry.Extensions(),
		Loads:      s.loads,
		Saves:      s.saves,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "dispatcher"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
