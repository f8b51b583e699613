package launch

import (
	"context"
	"sync"

	"drawer/internal/catalog"
)

// MockLauncher records launches and returns LaunchFn's result (nil when unset).
type MockLauncher struct {
	LaunchFn func(context.Context, catalog.App) error

	mu       sync.Mutex
	Launched []catalog.App
}

// NewMockLauncher returns an empty MockLauncher.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// Launch records app and calls LaunchFn when set.
func (m *MockLauncher) Launch(ctx context.Context, app catalog.App) error {
	m.mu.Lock()
	m.Launched = append(m.Launched, app)
	m.mu.Unlock()
	if m.LaunchFn != nil {
		return m.LaunchFn(ctx, app)
	}
	return nil
}

// Calls returns a copy of the recorded launches.
func (m *MockLauncher) Calls() []catalog.App {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.App(nil), m.Launched...)
}
