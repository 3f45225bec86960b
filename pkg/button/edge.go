package button

import (
	"sync/atomic"
	"time"
)

// DefaultEdgeCapacity is the bounded edge channel capacity.
const DefaultEdgeCapacity = 5

// Edge is a single rising transition observed on a pin.
// Ephemeral: produced by EdgeSource, consumed and discarded by Debouncer.
type Edge struct {
	// Pin identifies the input that fired.
	Pin int

	// At is when the edge was observed.
	At time.Time
}

// EdgeSource bridges interrupt-context edge callbacks into a bounded
// channel. OnEdge is the only method safe to call from interrupt context.
type EdgeSource struct {
	edges   chan Edge
	dropped atomic.Uint64
}

// NewEdgeSource creates an EdgeSource with the default channel capacity.
func NewEdgeSource() *EdgeSource {
	return NewEdgeSourceWithCapacity(DefaultEdgeCapacity)
}

// NewEdgeSourceWithCapacity creates an EdgeSource with the given capacity.
func NewEdgeSourceWithCapacity(capacity int) *EdgeSource {
	if capacity <= 0 {
		capacity = DefaultEdgeCapacity
	}
	return &EdgeSource{edges: make(chan Edge, capacity)}
}

// OnEdge records a rising edge on the given pin.
//
// Interrupt-context contract: never blocks, never allocates, never logs.
// If the channel is full the edge is counted as dropped and discarded.
func (s *EdgeSource) OnEdge(pin int) {
	select {
	case s.edges <- Edge{Pin: pin, At: time.Now()}:
	default:
		s.dropped.Add(1)
	}
}

// Edges returns the channel the Debouncer consumes.
func (s *EdgeSource) Edges() <-chan Edge {
	return s.edges
}

// Dropped returns how many edges were discarded because the channel was
// full. Informational only.
func (s *EdgeSource) Dropped() uint64 {
	return s.dropped.Load()
}
