package simulation

import (
	"sync"

	"github.com/prov-protocol/prov-go/pkg/button"
)

// Pin simulates a GPIO input with a button attached. It pushes raw edges
// into an EdgeSource the way an interrupt handler would, and answers
// level samples with its current settled state.
type Pin struct {
	// Number is the pin number reported on every edge.
	Number int

	source *button.EdgeSource

	mu      sync.Mutex
	pressed bool
}

// NewPin creates a simulated pin feeding the given edge source.
func NewPin(number int, source *button.EdgeSource) *Pin {
	return &Pin{Number: number, source: source}
}

// Level reports whether the pin is at its active (pressed) level.
// Implements button.PinSampler.
func (p *Pin) Level(pin int) bool {
	if pin != p.Number {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pressed
}

// Press closes the contact and emits one edge.
func (p *Pin) Press() {
	p.setLevel(true)
	p.edge()
}

// Release opens the contact and emits one edge.
func (p *Pin) Release() {
	p.setLevel(false)
	p.edge()
}

// PressBouncy closes the contact the way a real switch does: a burst of
// edges in quick succession, settling at the pressed level.
func (p *Pin) PressBouncy(edges int) {
	p.setLevel(true)
	for i := 0; i < edges; i++ {
		p.edge()
	}
}

// Glitch emits a burst of edges but settles released, simulating
// electrical noise that is not a press.
func (p *Pin) Glitch(edges int) {
	p.setLevel(false)
	for i := 0; i < edges; i++ {
		p.edge()
	}
}

func (p *Pin) setLevel(pressed bool) {
	p.mu.Lock()
	p.pressed = pressed
	p.mu.Unlock()
}

func (p *Pin) edge() {
	p.source.OnEdge(p.Number)
}

// Compile-time interface satisfaction check.
var _ button.PinSampler = (*Pin)(nil)
