package provision

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prov-protocol/prov-go/pkg/identity"
	"github.com/prov-protocol/prov-go/pkg/provision/mocks"
)

// Bridge forwarding is verified through the controller's inbox: each
// callback must arrive as exactly one event, in call order.
func TestBridgeForwarding(t *testing.T) {
	network := mocks.NewMockNetwork(t)
	transport := mocks.NewMockTransport(t)
	store := mocks.NewMockCredentialStore(t)

	ctrl, err := New(Config{
		Identity:  identity.Identity{ServiceName: testServiceName},
		PoP:       testPoP,
		Network:   network,
		Transport: transport,
		Store:     store,
	})
	require.NoError(t, err)

	bridge := NewBridge(ctrl, nil)

	bridge.SessionStarted()
	bridge.CredentialsReceived("homenet", "hunter22")
	bridge.SessionSucceeded()
	bridge.SessionStopped()
	bridge.StationStarted()
	bridge.StationGotAddress(netip.MustParseAddr("10.0.0.7"))

	wantTypes := []EventType{
		EventSessionStarted,
		EventCredentialsReceived,
		EventSessionSucceeded,
		EventSessionStopped,
		EventStationStarted,
		EventStationGotAddress,
	}

	// The controller was never started, so the inbox still holds every
	// queued event in arrival order.
	require.Len(t, ctrl.inbox, len(wantTypes))
	for i, want := range wantTypes {
		select {
		case m := <-ctrl.inbox:
			require.False(t, m.trigger)
			require.Equal(t, want, m.event.Type, "event %d", i)
			switch want {
			case EventCredentialsReceived:
				require.NotNil(t, m.event.Credentials)
				require.Equal(t, "homenet", m.event.Credentials.SSID)
				require.Equal(t, "hunter22", m.event.Credentials.Passphrase)
			case EventStationGotAddress:
				require.Equal(t, "10.0.0.7", m.event.Addr.String())
			}
		case <-time.After(time.Second):
			t.Fatalf("event %d never forwarded", i)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      string
	}{
		{EventSessionStarted, "SESSION_STARTED"},
		{EventCredentialsReceived, "CREDENTIALS_RECEIVED"},
		{EventSessionSucceeded, "SESSION_SUCCEEDED"},
		{EventSessionStopped, "SESSION_STOPPED"},
		{EventStationStarted, "STATION_STARTED"},
		{EventStationGotAddress, "STATION_GOT_ADDRESS"},
		{EventType(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.eventType.String())
	}
}
