package log

import (
	"time"
)

// Event represents a lifecycle log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ServiceName is the device's advertised service name.
	ServiceName string `cbor:"2,keyasint,omitempty"`

	// SessionID identifies the provisioning session (UUID), when one exists.
	SessionID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent  `cbor:"5,keyasint,omitempty"` // Controller transitions
	Trigger     *TriggerEvent      `cbor:"6,keyasint,omitempty"` // Button triggers
	Protocol    *ProtocolEventData `cbor:"7,keyasint,omitempty"` // Stack/transport events
	Error       *ErrorEventData    `cbor:"8,keyasint,omitempty"` // Errors at any layer
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a controller state change.
	CategoryState Category = 0
	// CategoryTrigger indicates a debounced button trigger.
	CategoryTrigger Category = 1
	// CategoryProtocol indicates a normalized protocol event.
	CategoryProtocol Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryTrigger:
		return "TRIGGER"
	case CategoryProtocol:
		return "PROTOCOL"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a controller state transition.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty at boot).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// TriggerEvent captures a reset trigger from the button pipeline.
type TriggerEvent struct {
	// Pin is the input that produced the trigger.
	Pin int `cbor:"1,keyasint,omitempty"`

	// Coalesced is true when the trigger was dropped because a reset
	// sequence was already queued or running.
	Coalesced bool `cbor:"2,keyasint,omitempty"`
}

// ProtocolEventData captures a normalized stack or transport event.
type ProtocolEventData struct {
	// Type is the protocol event name (e.g. "CREDENTIALS_RECEIVED").
	Type string `cbor:"1,keyasint"`

	// Dropped is true when the controller ignored the event because it
	// arrived in a state where it has no meaning.
	Dropped bool `cbor:"2,keyasint,omitempty"`

	// Reason explains a drop (if applicable).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
