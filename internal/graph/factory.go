package graph

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/anthropics/og/internal/model"
)

// EnvBackend selects the backend when New is called with an empty name.
const EnvBackend = "GRAPH_BACKEND"

// Constructor builds a backend from options.
type Constructor func(opts Options) (Engine, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
	discovery  sync.Once
)

// Register makes a backend constructor available under name. A later
// registration for the same name replaces the earlier one.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// Discover registers the built-in backends. Called implicitly by New;
// safe to call more than once.
func Discover() {
	discovery.Do(func() {
		Register(BackendMemory, func(opts Options) (Engine, error) {
			return NewMemory(opts), nil
		})
		Register(BackendSQL, NewSQLite)
		Register(BackendDolt, NewDolt)
	})
}

// New constructs the named backend. An empty name falls back to the
// GRAPH_BACKEND environment variable, then to memory.
func New(name string, opts Options) (Engine, error) {
	Discover()
	if name == "" {
		name = os.Getenv(EnvBackend)
	}
	if name == "" {
		name = BackendMemory
	}
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, model.Validationf("unknown backend %q (available: %s)",
			name, strings.Join(Backends(), ", "))
	}
	return ctor(opts)
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	Discover()
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
