package identity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Payload constants.
const (
	// PayloadVersion is the current onboarding payload version.
	PayloadVersion = "v1"

	// TransportMDNS tags sessions carried over the mDNS-advertised
	// local transport.
	TransportMDNS = "mdns"

	// TransportBLE tags sessions carried over BLE.
	TransportBLE = "ble"

	// TransportSoftAP tags sessions carried over a device-hosted AP.
	TransportSoftAP = "softap"
)

// Payload errors.
var (
	ErrInvalidPayload     = errors.New("invalid onboarding payload")
	ErrUnsupportedVersion = errors.New("unsupported payload version")
)

// OnboardingPayload is the record handed to the rendering collaborator
// (QR code, console) and scanned by the companion onboarding app.
//
// Field names are the compatibility contract with the companion app and
// must not change.
type OnboardingPayload struct {
	Version   string `json:"ver"`
	Name      string `json:"name"`
	PoP       string `json:"pop"`
	Transport string `json:"transport"`
}

// NewOnboardingPayload builds a payload for the given identity.
func NewOnboardingPayload(id Identity, pop, transport string) OnboardingPayload {
	return OnboardingPayload{
		Version:   PayloadVersion,
		Name:      id.ServiceName,
		PoP:       pop,
		Transport: transport,
	}
}

// Encode serializes the payload as compact JSON.
func (p OnboardingPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode onboarding payload: %w", err)
	}
	return string(data), nil
}

// ParseOnboardingPayload parses a payload string produced by Encode.
// Companion-side use; validates version and required fields.
func ParseOnboardingPayload(s string) (OnboardingPayload, error) {
	var p OnboardingPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return OnboardingPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Version != PayloadVersion {
		return OnboardingPayload{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, p.Version)
	}
	if err := ValidateServiceName(p.Name); err != nil {
		return OnboardingPayload{}, err
	}
	if p.PoP == "" || p.Transport == "" {
		return OnboardingPayload{}, fmt.Errorf("%w: missing pop or transport", ErrInvalidPayload)
	}
	return p, nil
}
