package provision

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prov-protocol/prov-go/pkg/identity"
	"github.com/prov-protocol/prov-go/pkg/log"
)

// Controller errors.
var (
	ErrInvalidState   = errors.New("operation not allowed in current state")
	ErrNotStarted     = errors.New("controller not started")
	ErrAlreadyStarted = errors.New("controller already started")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// State represents the controller state.
type State uint8

const (
	// StateUnprovisioned - no stored credentials and no active session.
	StateUnprovisioned State = iota

	// StateProvisioning - a provisioning session is active and the device
	// is accepting credentials.
	StateProvisioning

	// StateConnected - the device operates with stored credentials.
	StateConnected

	// StateResetting - transient; a reset sequence is tearing down for
	// reprovisioning (disconnect, stop, start).
	StateResetting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnprovisioned:
		return "UNPROVISIONED"
	case StateProvisioning:
		return "PROVISIONING"
	case StateConnected:
		return "CONNECTED"
	case StateResetting:
		return "RESETTING"
	default:
		return "UNKNOWN"
	}
}

// DefaultInboxSize is the default controller inbox capacity. Sends into a
// full inbox block rather than drop; protocol events are not safe to lose.
const DefaultInboxSize = 16

// Config configures a Controller.
type Config struct {
	// Identity is the device's provisioning identity, derived at boot.
	Identity identity.Identity

	// PoP is the proof-of-possession secret for the transport handshake.
	PoP string

	// TransportTag labels the transport in the onboarding payload
	// (default: identity.TransportMDNS).
	TransportTag string

	// Network is the wireless stack collaborator.
	Network Network

	// Transport is the provisioning transport collaborator.
	Transport Transport

	// Store is the credential store collaborator.
	Store CredentialStore

	// Renderer receives the onboarding payload when provisioning starts.
	// Optional; nil disables rendering.
	Renderer PayloadRenderer

	// InboxSize overrides DefaultInboxSize when positive.
	InboxSize int

	// StrictStateChecks makes contract violations panic instead of being
	// logged and ignored. Enable in development builds.
	StrictStateChecks bool

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// LifecycleLogger is the optional structured lifecycle event logger.
	// If nil, lifecycle capture is disabled.
	LifecycleLogger log.Logger
}

// Validate checks that all required collaborators are present.
func (c *Config) Validate() error {
	if c.Identity.ServiceName == "" {
		return fmt.Errorf("%w: identity service name is required", ErrInvalidConfig)
	}
	if c.PoP == "" {
		return fmt.Errorf("%w: proof-of-possession secret is required", ErrInvalidConfig)
	}
	if c.Network == nil {
		return fmt.Errorf("%w: network collaborator is required", ErrInvalidConfig)
	}
	if c.Transport == nil {
		return fmt.Errorf("%w: transport collaborator is required", ErrInvalidConfig)
	}
	if c.Store == nil {
		return fmt.Errorf("%w: credential store is required", ErrInvalidConfig)
	}
	return nil
}
