package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// PoPLength is the number of characters in a proof-of-possession secret.
const PoPLength = 8

// popInfo is the HKDF info string binding derived secrets to this use.
var popInfo = []byte("prov-pop-v1")

// ErrEmptyFactorySecret is returned when deriving a PoP without a secret.
var ErrEmptyFactorySecret = errors.New("factory secret must not be empty")

// GeneratePoP returns a random proof-of-possession secret as PoPLength
// lower-case hex characters. Suitable for ephemeral demo devices; real
// deployments should configure a per-device secret instead.
func GeneratePoP() (string, error) {
	b := make([]byte, PoPLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate pop: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DerivePoP derives a deterministic per-device proof-of-possession secret
// from a factory secret and the device's hardware identifier using
// HKDF-SHA256. The same (secret, hw) pair always yields the same PoP, so
// a backend that knows the factory secret can compute each device's PoP
// without per-device provisioning records.
func DerivePoP(factorySecret, hw []byte) (string, error) {
	if len(factorySecret) == 0 {
		return "", ErrEmptyFactorySecret
	}
	r := hkdf.New(sha256.New, factorySecret, hw, popInfo)
	b := make([]byte, PoPLength/2)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("failed to derive pop: %w", err)
	}
	return hex.EncodeToString(b), nil
}
