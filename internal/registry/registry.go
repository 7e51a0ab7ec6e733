package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/specialistvlad/schematicgo/internal/schematic"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Options carries run-wide settings to a handler.
type Options struct {
	Workers int
}

// Detail is one contributing item behind a Result, such as a meshed gear.
type Detail struct {
	Symbol       string   `json:"symbol"`
	Column       int      `json:"column"`
	Row          int      `json:"row"`
	Numbers      []uint64 `json:"numbers"`
	Contribution uint64   `json:"contribution"`
}

// Result is the outcome of one aggregation over one schematic.
type Result struct {
	Value   uint64
	Details []Detail
}

// HandlerFunc computes an aggregate from a complete token set.
type HandlerFunc func(ctx context.Context, tokens *schematic.Tokens, opts Options) (*Result, error)

// RegisteredHandler is an aggregation known to the registry.
type RegisteredHandler struct {
	Description string
	Fn          HandlerFunc
}

// Registry holds the aggregations of a single application instance.
type Registry struct {
	handlers map[string]*RegisteredHandler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]*RegisteredHandler),
	}
}

// RegisterHandler registers an aggregation under name.
func (r *Registry) RegisterHandler(name string, handler *RegisteredHandler) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("aggregation handler with name '%s' already registered", name))
	}
	if handler == nil || handler.Fn == nil {
		panic(fmt.Sprintf("aggregation handler '%s' has no function", name))
	}
	slog.Debug("Registering aggregation handler.", "name", name)
	r.handlers[name] = handler
}

// Handler looks up an aggregation by name.
func (r *Registry) Handler(name string) (*RegisteredHandler, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown aggregation '%s' (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return h, nil
}

// Names returns the registered aggregation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
