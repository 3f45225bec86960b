package provision

import (
	"net/netip"

	"github.com/prov-protocol/prov-go/pkg/persistence"
)

// EventType identifies a normalized protocol event.
type EventType uint8

const (
	// EventSessionStarted - the transport accepted a session and began
	// advertising.
	EventSessionStarted EventType = iota

	// EventCredentialsReceived - the transport delivered network
	// credentials from the onboarding app.
	EventCredentialsReceived

	// EventSessionSucceeded - the delivered credentials were applied and
	// verified.
	EventSessionSucceeded

	// EventSessionStopped - the provisioning session ended.
	EventSessionStopped

	// EventStationStarted - the wireless station interface came up.
	EventStationStarted

	// EventStationGotAddress - the station acquired a network address.
	EventStationGotAddress
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "SESSION_STARTED"
	case EventCredentialsReceived:
		return "CREDENTIALS_RECEIVED"
	case EventSessionSucceeded:
		return "SESSION_SUCCEEDED"
	case EventSessionStopped:
		return "SESSION_STOPPED"
	case EventStationStarted:
		return "STATION_STARTED"
	case EventStationGotAddress:
		return "STATION_GOT_ADDRESS"
	default:
		return "UNKNOWN"
	}
}

// Event is a normalized protocol event from the wireless stack or the
// provisioning transport. Produced by the Bridge, consumed in arrival
// order by the Controller.
type Event struct {
	// Type discriminates the union.
	Type EventType

	// Credentials accompany EventCredentialsReceived.
	Credentials *persistence.Credentials

	// Addr accompanies EventStationGotAddress.
	Addr netip.Addr
}
