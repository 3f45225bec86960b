// Package provision implements the onboarding lifecycle controller.
//
// The Controller is a single-goroutine state machine deciding whether the
// device is accepting credentials (Provisioning), operating with stored
// ones (Connected), or tearing down for reprovisioning (Resetting). All
// inputs - debounced button triggers and normalized protocol events from
// the wireless stack and the provisioning transport - funnel into one
// FIFO inbox drained by the controller goroutine, which is the only
// writer of session state. The inbox is the sole synchronization point;
// there are no data races to reason about elsewhere.
//
// # States
//
//	Unprovisioned -> Provisioning -> Connected
//	     ^                               |
//	     +--------- Resetting <----------+   (button trigger, any state)
//
// A reset runs disconnect, stop, start as one uninterruptible sequence:
// the controller processes no other event until it completes. Triggers
// arriving while a reset is queued or running are coalesced away, so
// reentry depth is bounded at one.
//
// # Collaborators
//
// The wireless stack (Network), the secure provisioning transport
// (Transport), the credential store (CredentialStore) and the payload
// renderer (PayloadRenderer) are external collaborators reached through
// narrow interfaces. The controller is the only caller of the transport's
// start/stop entry points and the network's connect/disconnect.
//
// # Event handling
//
// Protocol events only have meaning in specific states. Events arriving
// elsewhere - credentials while Connected, a stop with no session - are
// logged and dropped, never applied. A stop the controller requested
// itself is absorbed as the expected acknowledgment rather than treated
// as a session ending on its own.
package provision
