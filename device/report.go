package device

import "sync"

// ReportBuilder is implemented by input states that encode to the bytes of
// an interrupt IN report.
type ReportBuilder interface {
	BuildReport() []byte
}

// Latest holds the most recent input state of a device. The poll side
// stores into it and the transport side encodes from it; both may run on
// different goroutines. The zero value holds the zero state.
type Latest[T any, P interface {
	*T
	ReportBuilder
}] struct {
	mu sync.Mutex
	v  T
}

// NewLatest returns a Latest holding v.
func NewLatest[T any, P interface {
	*T
	ReportBuilder
}](v T) *Latest[T, P] {
	return &Latest[T, P]{v: v}
}

// Store replaces the held state.
func (l *Latest[T, P]) Store(v T) {
	l.mu.Lock()
	l.v = v
	l.mu.Unlock()
}

// Load returns a copy of the held state.
func (l *Latest[T, P]) Load() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v
}

// Build encodes a copy of the held state. The encoder never sees a state
// that is being stored concurrently.
func (l *Latest[T, P]) Build() []byte {
	v := l.Load()
	return P(&v).BuildReport()
}
