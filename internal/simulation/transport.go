package simulation

import (
	"context"
	"errors"
	"sync"

	"github.com/prov-protocol/prov-go/pkg/provision"
)

// ErrNoSession is returned when credentials are delivered with no
// provisioning session active.
var ErrNoSession = errors.New("no provisioning session active")

// Transport simulates the provisioning transport. Starting a session
// reports SessionStarted; DeliverCredentials plays the part of the
// onboarding app, walking the session through credential delivery,
// verification, and station bring-up.
type Transport struct {
	mu          sync.Mutex
	bridge      *provision.Bridge
	inner       provision.Transport
	active      bool
	serviceName string
	pop         string
	starts      int
	stops       int
}

// NewTransport creates an idle simulated transport.
func NewTransport() *Transport {
	return &Transport{}
}

// Bind attaches the bridge used to report session events. Must be called
// before the controller starts.
func (t *Transport) Bind(bridge *provision.Bridge) {
	t.mu.Lock()
	t.bridge = bridge
	t.mu.Unlock()
}

// Chain forwards session starts and stops to a real transport (for
// example the mDNS advertising adapter) while the simulation keeps
// driving the session events.
func (t *Transport) Chain(inner provision.Transport) {
	t.mu.Lock()
	t.inner = inner
	t.mu.Unlock()
}

// StartProvisioning opens a session and reports it started.
func (t *Transport) StartProvisioning(ctx context.Context, serviceName, pop string) error {
	t.mu.Lock()
	inner := t.inner
	t.mu.Unlock()

	if inner != nil {
		if err := inner.StartProvisioning(ctx, serviceName, pop); err != nil {
			return err
		}
	}

	t.mu.Lock()
	t.active = true
	t.serviceName = serviceName
	t.pop = pop
	t.starts++
	bridge := t.bridge
	t.mu.Unlock()

	if bridge != nil {
		go bridge.SessionStarted()
	}
	return nil
}

// StopProvisioning closes the session, reporting the stop back the way a
// real transport acknowledges a teardown. Stopping with no session is a
// no-op.
func (t *Transport) StopProvisioning() error {
	t.mu.Lock()
	wasActive := t.active
	t.active = false
	t.stops++
	bridge := t.bridge
	inner := t.inner
	t.mu.Unlock()

	if inner != nil {
		if err := inner.StopProvisioning(); err != nil {
			return err
		}
	}

	if wasActive && bridge != nil {
		go bridge.SessionStopped()
	}
	return nil
}

// DeliverCredentials plays a successful onboarding exchange: the app
// sends credentials, the device verifies them, and the station comes up.
// The reports run in order on one goroutine so the controller sees them
// in sequence.
func (t *Transport) DeliverCredentials(ssid, passphrase string) error {
	t.mu.Lock()
	active := t.active
	bridge := t.bridge
	t.mu.Unlock()

	if !active {
		return ErrNoSession
	}
	if bridge == nil {
		return errors.New("transport not bound to a bridge")
	}

	go func() {
		bridge.CredentialsReceived(ssid, passphrase)
		bridge.SessionSucceeded()
		bridge.StationStarted()
	}()
	return nil
}

// Active reports whether a session is open.
func (t *Transport) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// ServiceName returns the name advertised by the current or most recent
// session.
func (t *Transport) ServiceName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.serviceName
}

// PoP returns the secret guarding the current or most recent session.
func (t *Transport) PoP() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pop
}

// Starts returns how many sessions were opened.
func (t *Transport) Starts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.starts
}

// Stops returns how many stop calls were issued.
func (t *Transport) Stops() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stops
}

// Compile-time interface satisfaction check.
var _ provision.Transport = (*Transport)(nil)
