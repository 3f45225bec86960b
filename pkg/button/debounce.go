package button

import (
	"context"
	"log/slog"
	"time"
)

// DefaultQuietWindow is how long the Debouncer waits after the first edge
// of a press before resampling the pin level.
const DefaultQuietWindow = 50 * time.Millisecond

// PinSampler reads the current physical level of a pin.
// Implementations wrap the GPIO driver; tests use a fake.
type PinSampler interface {
	// Level returns true while the pin is at its active (pressed) level.
	Level(pin int) bool
}

// DebouncerConfig configures a Debouncer.
type DebouncerConfig struct {
	// QuietWindow overrides DefaultQuietWindow when positive.
	QuietWindow time.Duration

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Debouncer collapses a burst of raw edges into at most one trigger per
// physical press. It is a single consumer: exactly one Run loop may be
// active per Debouncer.
type Debouncer struct {
	edges   <-chan Edge
	sampler PinSampler
	window  time.Duration

	triggers chan struct{}
	logger   *slog.Logger
}

// NewDebouncer creates a Debouncer consuming from src.
func NewDebouncer(src *EdgeSource, sampler PinSampler, config DebouncerConfig) *Debouncer {
	window := config.QuietWindow
	if window <= 0 {
		window = DefaultQuietWindow
	}
	return &Debouncer{
		edges:    src.Edges(),
		sampler:  sampler,
		window:   window,
		triggers: make(chan struct{}, 1),
		logger:   config.Logger,
	}
}

// Triggers returns the channel carrying one value per confirmed press.
// Capacity one; a confirmed press is dropped while a previous trigger is
// still undelivered.
func (d *Debouncer) Triggers() <-chan struct{} {
	return d.triggers
}

// Run consumes edges until ctx is cancelled.
func (d *Debouncer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case edge := <-d.edges:
			d.settle(ctx, edge)
		}
	}
}

// settle waits out the quiet window after the first edge of a press,
// discards the burst, then decides from the physical level alone.
func (d *Debouncer) settle(ctx context.Context, edge Edge) {
	timer := time.NewTimer(d.window)
	select {
	case <-ctx.Done():
		timer.Stop()
		return
	case <-timer.C:
	}

	d.drain()

	if !d.sampler.Level(edge.Pin) {
		if d.logger != nil {
			d.logger.Debug("edge discarded as bounce", "pin", edge.Pin)
		}
		return
	}

	select {
	case d.triggers <- struct{}{}:
		if d.logger != nil {
			d.logger.Debug("press confirmed", "pin", edge.Pin)
		}
	default:
		if d.logger != nil {
			d.logger.Debug("press coalesced, trigger already pending", "pin", edge.Pin)
		}
	}
}

// drain discards edges that accumulated during the quiet window so a
// bouncy press cannot produce a second confirmation pass.
func (d *Debouncer) drain() {
	for {
		select {
		case <-d.edges:
		default:
			return
		}
	}
}
