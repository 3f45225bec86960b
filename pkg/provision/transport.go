package provision

import (
	"context"

	"github.com/prov-protocol/prov-go/pkg/discovery"
	"github.com/prov-protocol/prov-go/pkg/identity"
)

// AdvertisingTransport implements the advertising side of the Transport
// contract over mDNS. The secure handshake and credential delivery belong
// to the full transport stack; this adapter covers what the controller
// drives directly - making the device discoverable while a session is
// active and withdrawing it when the session stops.
//
// The proof-of-possession secret is accepted per the Transport contract
// but never advertised.
type AdvertisingTransport struct {
	advertiser discovery.Advertiser
	transport  string
	port       uint16
}

// NewAdvertisingTransport creates the adapter. transport tags the session
// carrier in TXT records (e.g. identity.TransportMDNS); port 0 means
// discovery.DefaultPort.
func NewAdvertisingTransport(advertiser discovery.Advertiser, transport string, port uint16) *AdvertisingTransport {
	if transport == "" {
		transport = identity.TransportMDNS
	}
	return &AdvertisingTransport{
		advertiser: advertiser,
		transport:  transport,
		port:       port,
	}
}

// StartProvisioning advertises the provisionable service.
func (t *AdvertisingTransport) StartProvisioning(ctx context.Context, serviceName, pop string) error {
	_ = pop // held by the session handshake, never advertised
	return t.advertiser.Advertise(ctx, &discovery.ProvisionableInfo{
		ServiceName: serviceName,
		Version:     identity.PayloadVersion,
		Transport:   t.transport,
		Port:        t.port,
	})
}

// StopProvisioning withdraws the advertisement.
func (t *AdvertisingTransport) StopProvisioning() error {
	return t.advertiser.Stop()
}

// Compile-time interface satisfaction check.
var _ Transport = (*AdvertisingTransport)(nil)
