package identity

import (
	"errors"
	"fmt"
)

// Service name constants.
const (
	// ServiceNamePrefix is the fixed prefix of every service name.
	ServiceNamePrefix = "PROV_"

	// ServiceNameHexBytes is how many trailing hardware-address bytes
	// appear in the service name.
	ServiceNameHexBytes = 3

	// ServiceNameLength is the total service name length
	// (prefix + two hex digits per byte).
	ServiceNameLength = len(ServiceNamePrefix) + 2*ServiceNameHexBytes
)

// Identity errors.
var (
	ErrHardwareIDTooShort = errors.New("hardware identifier too short")
	ErrInvalidServiceName = errors.New("invalid service name")
)

// Identity is the device's provisioning identity, derived once at boot.
// It is immutable for the process lifetime.
type Identity struct {
	// ServiceName is the advertised instance name (PROV_XXYYZZ).
	ServiceName string
}

// ServiceName derives the service name from a hardware-stable identifier.
// The identifier must be at least ServiceNameHexBytes long; only its last
// three bytes contribute, so a full 6-byte MAC and a truncated serial
// produce the same name as long as they share a tail.
//
// The function is pure: the same input always yields the same name.
func ServiceName(hw []byte) (string, error) {
	if len(hw) < ServiceNameHexBytes {
		return "", fmt.Errorf("%w: need at least %d bytes, got %d",
			ErrHardwareIDTooShort, ServiceNameHexBytes, len(hw))
	}
	tail := hw[len(hw)-ServiceNameHexBytes:]
	return fmt.Sprintf("%s%02X%02X%02X", ServiceNamePrefix, tail[0], tail[1], tail[2]), nil
}

// New derives an Identity from a hardware-stable identifier.
func New(hw []byte) (Identity, error) {
	name, err := ServiceName(hw)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ServiceName: name}, nil
}

// ValidateServiceName checks that a string is a well-formed service name.
// Used by companion-side tooling when parsing discovered instance names.
func ValidateServiceName(name string) error {
	if len(name) != ServiceNameLength {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidServiceName, len(name), ServiceNameLength)
	}
	if name[:len(ServiceNamePrefix)] != ServiceNamePrefix {
		return fmt.Errorf("%w: missing %q prefix", ErrInvalidServiceName, ServiceNamePrefix)
	}
	for _, c := range name[len(ServiceNamePrefix):] {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return fmt.Errorf("%w: non-hex character %q", ErrInvalidServiceName, c)
		}
	}
	return nil
}
