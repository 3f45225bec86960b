package provision

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prov-protocol/prov-go/pkg/identity"
	"github.com/prov-protocol/prov-go/pkg/log"
)

// message is an inbox entry: either a reset trigger or a protocol event.
type message struct {
	trigger bool
	event   Event
}

// Controller drives the onboarding lifecycle. Create with New, then call
// Start once; the event loop runs until the context is cancelled.
type Controller struct {
	config Config

	mu      sync.RWMutex
	state   State
	session *Session

	inbox chan message

	// resetPending is set when a reset trigger is queued and cleared only
	// after the reset sequence completes, so triggers arriving in between
	// are coalesced away.
	resetPending atomic.Bool

	// expectedStops counts session-stop events the controller caused
	// itself; those are acknowledgments, not spontaneous session ends.
	// Touched only from the controller goroutine (and Start, before the
	// loop exists).
	expectedStops int

	running atomic.Bool

	logger          *slog.Logger
	lifecycleLogger log.Logger
}

// New creates a Controller. The controller does nothing until Start.
func New(config Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.TransportTag == "" {
		config.TransportTag = identity.TransportMDNS
	}
	size := config.InboxSize
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Controller{
		config:          config,
		state:           StateUnprovisioned,
		inbox:           make(chan message, size),
		logger:          config.Logger,
		lifecycleLogger: config.LifecycleLogger,
	}, nil
}

// Start performs the boot decision and launches the event loop.
// The credential store is consulted exactly once: no stored credentials
// means the device boots straight into provisioning, otherwise it
// connects with what it has. A store failure here is abort-class; the
// caller should halt.
func (c *Controller) Start(ctx context.Context) error {
	if c.running.Swap(true) {
		return ErrAlreadyStarted
	}

	provisioned, err := c.config.Store.IsProvisioned()
	if err != nil {
		c.running.Store(false)
		return fmt.Errorf("credential store query failed: %w", err)
	}

	if provisioned {
		if c.logger != nil {
			c.logger.Info("already provisioned, connecting", "service_name", c.config.Identity.ServiceName)
		}
		// Connection failures are owned by the network collaborator's
		// reconnection policy; the controller only issues the intent.
		if err := c.config.Network.Connect(); err != nil {
			c.logError(err, "initial connect")
		}
		c.setState(StateConnected, "stored credentials")
	} else {
		if c.logger != nil {
			c.logger.Info("no stored credentials, starting provisioning", "service_name", c.config.Identity.ServiceName)
		}
		c.startProvisioning(ctx)
	}

	go c.run(ctx)
	return nil
}

// run drains the inbox in strict arrival order. This loop is the only
// writer of state and session.
func (c *Controller) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-c.inbox:
			if m.trigger {
				c.handleResetTrigger(ctx)
			} else {
				c.handleProtocolEvent(m.event)
			}
		}
	}
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Session returns a copy of the active session, or nil if none exists.
func (c *Controller) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Submit queues a protocol event. Blocks when the inbox is full; protocol
// events are not safe to lose.
func (c *Controller) Submit(ev Event) {
	c.inbox <- message{event: ev}
}

// RequestReset queues a reset trigger. A trigger arriving while another
// reset is queued or still executing is coalesced (dropped), bounding
// reentry depth to one.
func (c *Controller) RequestReset() {
	if !c.resetPending.CompareAndSwap(false, true) {
		if c.logger != nil {
			c.logger.Debug("reset trigger coalesced, reset already pending")
		}
		c.logLifecycle(log.Event{
			Category: log.CategoryTrigger,
			Trigger:  &log.TriggerEvent{Coalesced: true},
		})
		return
	}

	if c.logger != nil {
		c.logger.Info("reset trigger accepted")
	}
	c.logLifecycle(log.Event{
		Category: log.CategoryTrigger,
		Trigger:  &log.TriggerEvent{},
	})
	c.inbox <- message{trigger: true}
}

// BindTriggers forwards confirmed button presses into the controller
// until ctx is cancelled.
func (c *Controller) BindTriggers(ctx context.Context, triggers <-chan struct{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-triggers:
				c.RequestReset()
			}
		}
	}()
}

// handleResetTrigger executes the reset sequence: disconnect, stop,
// start. It runs to completion before the loop touches the next inbox
// entry, so it is atomic with respect to every other operation.
func (c *Controller) handleResetTrigger(ctx context.Context) {
	defer c.resetPending.Store(false)

	c.setState(StateResetting, "reset trigger")

	if err := c.config.Network.Disconnect(); err != nil {
		c.logError(err, "reset disconnect")
	}

	c.stopProvisioning()

	// Factory semantics: a reset wipes stored credentials so the device
	// cannot fall back to the old network.
	if err := c.config.Store.Clear(); err != nil {
		c.logError(err, "reset credential wipe")
	}

	c.startProvisioning(ctx)
}

// startProvisioning begins a session. Allowed only from Unprovisioned or
// as the terminal step of a reset; anywhere else is a contract violation.
func (c *Controller) startProvisioning(ctx context.Context) {
	if st := c.State(); st == StateProvisioning || st == StateConnected {
		c.contractViolation("startProvisioning", st)
		return
	}

	sess := newSession(c.config.Identity.ServiceName, c.config.PoP)

	if err := c.config.Transport.StartProvisioning(ctx, sess.ServiceName, sess.PoP); err != nil {
		c.logError(err, "transport start")
		c.setState(StateUnprovisioned, "transport start failed")
		return
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	c.setState(StateProvisioning, "session started")

	c.renderPayload()
}

// stopProvisioning tears down the transport session. The transport stop
// is issued unconditionally; with no active session it is a no-op on the
// transport side and no acknowledgment is expected back.
func (c *Controller) stopProvisioning() {
	if err := c.config.Transport.StopProvisioning(); err != nil {
		c.logError(err, "transport stop")
	}

	if c.Session() == nil {
		return
	}

	// The transport will report this stop back as a SessionStopped event;
	// count it so it is absorbed as an acknowledgment.
	c.expectedStops++

	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// handleProtocolEvent applies a normalized event to the state machine.
// Events arriving in a state where they have no meaning are logged and
// dropped, never applied.
func (c *Controller) handleProtocolEvent(ev Event) {
	switch ev.Type {
	case EventSessionStarted:
		if c.State() != StateProvisioning {
			c.dropEvent(ev, "no session starting")
			return
		}
		if c.logger != nil {
			c.logger.Info("provisioning session started", "session_id", c.sessionID())
		}
		c.logProtocol(ev)

	case EventCredentialsReceived:
		if c.State() != StateProvisioning || ev.Credentials == nil {
			c.dropEvent(ev, "not provisioning")
			return
		}
		if c.logger != nil {
			// The passphrase is deliberately not logged.
			c.logger.Info("credentials received", "ssid", ev.Credentials.SSID)
		}
		c.logProtocol(ev)
		if err := c.config.Store.Save(*ev.Credentials); err != nil {
			c.logError(err, "credential save")
		}

	case EventSessionSucceeded:
		if c.State() != StateProvisioning {
			c.dropEvent(ev, "not provisioning")
			return
		}
		if c.logger != nil {
			c.logger.Info("provisioning succeeded", "session_id", c.sessionID())
		}
		c.logProtocol(ev)
		// The device is onboarded; stop advertising the session.
		c.stopProvisioning()
		c.setState(StateConnected, "provisioning succeeded")

	case EventSessionStopped:
		if c.expectedStops > 0 {
			c.expectedStops--
			if c.logger != nil {
				c.logger.Debug("session stop acknowledged")
			}
			c.logProtocol(ev)
			return
		}
		if c.State() != StateProvisioning {
			c.dropEvent(ev, "no active session")
			return
		}
		// The transport ended the session on its own (timeout, fault).
		if c.logger != nil {
			c.logger.Warn("provisioning session stopped externally")
		}
		c.logProtocol(ev)
		c.mu.Lock()
		c.session = nil
		c.mu.Unlock()
		c.setState(StateUnprovisioned, "session stopped")

	case EventStationStarted:
		if c.logger != nil {
			c.logger.Info("station started, connecting")
		}
		c.logProtocol(ev)
		if err := c.config.Network.Connect(); err != nil {
			c.logError(err, "station connect")
		}

	case EventStationGotAddress:
		// Informational only; no state change.
		if c.logger != nil {
			c.logger.Info("station got address", "addr", ev.Addr.String())
		}
		c.logProtocol(ev)

	default:
		c.dropEvent(ev, "unknown event type")
	}
}

// renderPayload hands the onboarding payload to the rendering collaborator.
func (c *Controller) renderPayload() {
	if c.config.Renderer == nil {
		return
	}
	payload := identity.NewOnboardingPayload(c.config.Identity, c.config.PoP, c.config.TransportTag)
	if err := c.config.Renderer.Render(payload); err != nil {
		c.logError(err, "payload render")
	}
}

// setState records a state transition.
func (c *Controller) setState(newState State, reason string) {
	c.mu.Lock()
	oldState := c.state
	c.state = newState
	c.mu.Unlock()

	if oldState == newState {
		return
	}

	if c.logger != nil {
		c.logger.Info("state changed",
			"old_state", oldState.String(),
			"new_state", newState.String(),
			"reason", reason)
	}
	c.logLifecycle(log.Event{
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: oldState.String(),
			NewState: newState.String(),
			Reason:   reason,
		},
	})
}

// contractViolation reports a state-machine misuse. These indicate a
// programming error in the caller, not a runtime fault: fatal under
// StrictStateChecks, logged and ignored otherwise.
func (c *Controller) contractViolation(op string, st State) {
	msg := fmt.Sprintf("%s called in state %s: %v", op, st, ErrInvalidState)
	if c.config.StrictStateChecks {
		panic(msg)
	}
	if c.logger != nil {
		c.logger.Warn("contract violation ignored", "op", op, "state", st.String())
	}
	c.logLifecycle(log.Event{
		Category: log.CategoryError,
		Error:    &log.ErrorEventData{Message: ErrInvalidState.Error(), Context: op},
	})
}

// dropEvent records an event ignored under the out-of-state rule.
func (c *Controller) dropEvent(ev Event, reason string) {
	if c.logger != nil {
		c.logger.Warn("protocol event dropped",
			"event_type", ev.Type.String(),
			"state", c.State().String(),
			"reason", reason)
	}
	c.logLifecycle(log.Event{
		Category: log.CategoryProtocol,
		Protocol: &log.ProtocolEventData{Type: ev.Type.String(), Dropped: true, Reason: reason},
	})
}

// logProtocol records a handled protocol event.
func (c *Controller) logProtocol(ev Event) {
	c.logLifecycle(log.Event{
		Category: log.CategoryProtocol,
		Protocol: &log.ProtocolEventData{Type: ev.Type.String()},
	})
}

// logError records a collaborator failure. Per the propagation policy
// nothing is surfaced outward; handling is local logging plus whatever
// fallback transition the caller applies.
func (c *Controller) logError(err error, context string) {
	if c.logger != nil {
		c.logger.Error("operation failed", "context", context, "error", err)
	}
	c.logLifecycle(log.Event{
		Category: log.CategoryError,
		Error:    &log.ErrorEventData{Message: err.Error(), Context: context},
	})
}

// logLifecycle stamps and forwards an event to the lifecycle logger.
func (c *Controller) logLifecycle(ev log.Event) {
	if c.lifecycleLogger == nil {
		return
	}
	ev.Timestamp = time.Now()
	ev.ServiceName = c.config.Identity.ServiceName
	if ev.SessionID == "" {
		ev.SessionID = c.sessionID()
	}
	c.lifecycleLogger.Log(ev)
}

// sessionID returns the active session's ID, or "".
func (c *Controller) sessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.ID
}
