package catalog

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockSource has no ListFn.
var ErrMockNotImplemented = errors.New("catalog.MockSource: method not implemented")

// MockSource is a test double for Source.
type MockSource struct {
	ListFn func(context.Context) ([]App, error)

	mu            sync.Mutex
	ListCallCount int
}

// NewMockSource returns a MockSource with no handler set.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// List invokes ListFn or returns ErrMockNotImplemented.
func (m *MockSource) List(ctx context.Context) ([]App, error) {
	m.mu.Lock()
	m.ListCallCount++
	m.mu.Unlock()
	if m.ListFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListFn(ctx)
}
