package theme

import (
	"slices"
	"sync"
)

var registry = &manager{
	themes: make(map[string]Theme),
}

type manager struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current string
}

// Register adds a theme to the registry, replacing any theme with the same name.
// The first registered theme becomes the active one.
func Register(t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[t.Name] = t
	if registry.current == "" {
		registry.current = t.Name
	}
}

// Set switches to a registered theme by name.
// Returns false and leaves the active theme unchanged if name is unknown.
func Set(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.themes[name]; !ok {
		return false
	}
	registry.current = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.themes[registry.current]
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// Available returns the registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.namesLocked()
}

// Cycle activates the theme after the current one in sorted order, wrapping
// around, and returns its name.
func Cycle() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := registry.namesLocked()
	if len(names) == 0 {
		return ""
	}
	next := (slices.Index(names, registry.current) + 1) % len(names)
	registry.current = names[next]
	return registry.current
}

func (m *manager) namesLocked() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
