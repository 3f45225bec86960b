package provision

import (
	"log/slog"
	"net/netip"

	"github.com/prov-protocol/prov-go/pkg/persistence"
)

// Bridge normalizes callback-style notifications from the wireless stack
// and the provisioning transport into Events on the controller inbox.
// Pure plumbing: no business logic, and nothing is dropped - these events
// are low-rate and not safe to lose.
//
// Methods may be called from any goroutine; ordering within one caller is
// preserved by the inbox's FIFO guarantee.
type Bridge struct {
	controller *Controller
	logger     *slog.Logger
}

// NewBridge creates a Bridge feeding the given controller.
func NewBridge(controller *Controller, logger *slog.Logger) *Bridge {
	return &Bridge{controller: controller, logger: logger}
}

// SessionStarted reports that the transport began a session.
func (b *Bridge) SessionStarted() {
	b.forward(Event{Type: EventSessionStarted})
}

// CredentialsReceived reports credentials delivered by the onboarding app.
func (b *Bridge) CredentialsReceived(ssid, passphrase string) {
	b.forward(Event{
		Type:        EventCredentialsReceived,
		Credentials: &persistence.Credentials{SSID: ssid, Passphrase: passphrase},
	})
}

// SessionSucceeded reports that delivered credentials were verified.
func (b *Bridge) SessionSucceeded() {
	b.forward(Event{Type: EventSessionSucceeded})
}

// SessionStopped reports that the session ended.
func (b *Bridge) SessionStopped() {
	b.forward(Event{Type: EventSessionStopped})
}

// StationStarted reports that the station interface came up.
func (b *Bridge) StationStarted() {
	b.forward(Event{Type: EventStationStarted})
}

// StationGotAddress reports an acquired network address.
func (b *Bridge) StationGotAddress(addr netip.Addr) {
	b.forward(Event{Type: EventStationGotAddress, Addr: addr})
}

func (b *Bridge) forward(ev Event) {
	if b.logger != nil {
		b.logger.Debug("protocol event", "event_type", ev.Type.String())
	}
	b.controller.Submit(ev)
}
