package testutil

import "github.com/specialistvlad/schematicgo/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single aggregation.
type SimpleModule struct {
	Name    string
	Handler *registry.RegisteredHandler
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" && m.Handler != nil {
		r.RegisterHandler(m.Name, m.Handler)
	}
}
