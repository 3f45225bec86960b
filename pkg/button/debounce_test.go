package button

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakePin is a PinSampler with a settable level.
type fakePin struct {
	mu    sync.Mutex
	level bool
}

func (p *fakePin) Level(int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *fakePin) set(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

const testWindow = 10 * time.Millisecond

func startDebouncer(t *testing.T, pin *fakePin) (*EdgeSource, *Debouncer) {
	t.Helper()

	src := NewEdgeSource()
	deb := NewDebouncer(src, pin, DebouncerConfig{QuietWindow: testWindow})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go deb.Run(ctx)

	return src, deb
}

func expectTrigger(t *testing.T, deb *Debouncer) {
	t.Helper()
	select {
	case <-deb.Triggers():
	case <-time.After(20 * testWindow):
		t.Fatal("no trigger emitted")
	}
}

func expectNoTrigger(t *testing.T, deb *Debouncer) {
	t.Helper()
	select {
	case <-deb.Triggers():
		t.Fatal("unexpected trigger emitted")
	case <-time.After(5 * testWindow):
	}
}

func TestDebounceSinglePress(t *testing.T) {
	pin := &fakePin{level: true}
	src, deb := startDebouncer(t, pin)

	src.OnEdge(32)

	expectTrigger(t, deb)
	expectNoTrigger(t, deb)
}

func TestDebounceCoalescesBurst(t *testing.T) {
	pin := &fakePin{level: true}
	src, deb := startDebouncer(t, pin)

	// Contact bounce: several edges inside one quiet window.
	for i := 0; i < 5; i++ {
		src.OnEdge(32)
	}

	expectTrigger(t, deb)
	expectNoTrigger(t, deb)
}

func TestDebounceRejectsBounce(t *testing.T) {
	pin := &fakePin{level: false}
	src, deb := startDebouncer(t, pin)

	// Edge fired but the pin returned to inactive before the window
	// elapsed: a bounce, not a press.
	src.OnEdge(32)

	expectNoTrigger(t, deb)
}

func TestDebounceSeparatePresses(t *testing.T) {
	pin := &fakePin{level: true}
	src, deb := startDebouncer(t, pin)

	src.OnEdge(32)
	expectTrigger(t, deb)

	// Release, then press again well after the first window.
	pin.set(false)
	time.Sleep(2 * testWindow)
	pin.set(true)
	src.OnEdge(32)
	expectTrigger(t, deb)
}

func TestDebounceCoalescesPendingTrigger(t *testing.T) {
	pin := &fakePin{level: true}
	src, deb := startDebouncer(t, pin)

	// Two confirmed presses with nobody draining the trigger channel:
	// the second press must be coalesced into the pending trigger.
	src.OnEdge(32)
	time.Sleep(3 * testWindow)
	src.OnEdge(32)
	time.Sleep(3 * testWindow)

	expectTrigger(t, deb)
	expectNoTrigger(t, deb)
}

func TestDebounceStopsOnCancel(t *testing.T) {
	pin := &fakePin{level: true}
	src := NewEdgeSource()
	deb := NewDebouncer(src, pin, DebouncerConfig{QuietWindow: testWindow})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		deb.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDebounceDefaultWindow(t *testing.T) {
	deb := NewDebouncer(NewEdgeSource(), &fakePin{}, DebouncerConfig{})
	if deb.window != DefaultQuietWindow {
		t.Errorf("window = %v, want %v", deb.window, DefaultQuietWindow)
	}
}
