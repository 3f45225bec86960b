package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceTypeProvisionable is the service type for devices with an
	// active provisioning session.
	ServiceTypeProvisionable = "_prov._udp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default provisioning transport port.
	DefaultPort = 8443
)

// TXT record key constants.
const (
	// TXTKeyVersion is the onboarding payload version.
	TXTKeyVersion = "ver"

	// TXTKeyTransport is the transport tag the session is carried over.
	TXTKeyTransport = "tt"
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// Discovery errors.
var (
	ErrInvalidInstanceName = errors.New("invalid instance name")
	ErrMissingServiceName  = errors.New("missing service name")
	ErrNotAdvertising      = errors.New("not advertising")
)

// ProvisionableInfo describes the advertisement for a provisionable device.
type ProvisionableInfo struct {
	// ServiceName is the instance name (PROV_XXYYZZ).
	ServiceName string

	// Version is the onboarding payload version (e.g. "v1").
	Version string

	// Transport is the transport tag (e.g. "mdns").
	Transport string

	// Port is the provisioning transport port. 0 means DefaultPort.
	Port uint16
}

// Validate checks the advertisement fields.
func (i *ProvisionableInfo) Validate() error {
	if i.ServiceName == "" {
		return ErrMissingServiceName
	}
	if len(i.ServiceName) > MaxInstanceNameLen {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidInstanceName, MaxInstanceNameLen)
	}
	return nil
}

// EncodeTXT builds the TXT record strings for the advertisement.
func EncodeTXT(info *ProvisionableInfo) []string {
	return []string{
		fmt.Sprintf("%s=%s", TXTKeyVersion, info.Version),
		fmt.Sprintf("%s=%s", TXTKeyTransport, info.Transport),
	}
}

// Advertiser advertises a provisionable device.
// Implementations must be safe for concurrent use.
type Advertiser interface {
	// Advertise starts (or restarts) advertising the device.
	// Advertising continues until Stop is called.
	Advertise(ctx context.Context, info *ProvisionableInfo) error

	// Stop stops advertising. Stopping an idle advertiser is a no-op.
	Stop() error
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       120 * time.Second,
	}
}
