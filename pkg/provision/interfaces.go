package provision

import (
	"context"

	"github.com/prov-protocol/prov-go/pkg/identity"
	"github.com/prov-protocol/prov-go/pkg/persistence"
)

// Network is the wireless stack collaborator. Connection retries and
// failure recovery are owned by the implementation; the controller only
// issues intents and observes the resulting events through the Bridge.
type Network interface {
	// Connect associates the station using stored credentials.
	Connect() error

	// Disconnect drops the current association.
	Disconnect() error
}

// Transport is the secure provisioning transport collaborator. Its
// handshake and credential delivery are out of the controller's scope;
// the controller only starts and stops sessions and observes transport
// events through the Bridge.
type Transport interface {
	// StartProvisioning begins advertising a session under the given
	// service name, guarded by the proof-of-possession secret.
	StartProvisioning(ctx context.Context, serviceName, pop string) error

	// StopProvisioning tears down the active session's resources.
	// Stopping with no active session is a no-op.
	StopProvisioning() error
}

// CredentialStore is the persistent credential collaborator.
// It is satisfied by *persistence.CredentialStore.
type CredentialStore interface {
	// IsProvisioned reports whether credentials are stored.
	IsProvisioned() (bool, error)

	// Save persists delivered credentials.
	Save(creds persistence.Credentials) error

	// Clear removes stored credentials (factory reset).
	Clear() error
}

// Compile-time check: *persistence.CredentialStore implements CredentialStore.
var _ CredentialStore = (*persistence.CredentialStore)(nil)

// PayloadRenderer presents the onboarding payload to the operator
// (QR code, console, display).
type PayloadRenderer interface {
	Render(payload identity.OnboardingPayload) error
}
