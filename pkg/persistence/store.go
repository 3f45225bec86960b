package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// Credentials are the network credentials delivered during provisioning.
type Credentials struct {
	// SSID is the network name.
	SSID string `json:"ssid"`

	// Passphrase is the network secret.
	Passphrase string `json:"passphrase"`
}

// state is the on-disk record.
type state struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Credentials are the stored network credentials, absent when the
	// device is unprovisioned.
	Credentials *Credentials `json:"credentials,omitempty"`

	// ProvisionedAt is when credentials were first stored.
	ProvisionedAt time.Time `json:"provisioned_at,omitempty"`
}

// CredentialStore manages persistence of credentials to a JSON file.
type CredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewCredentialStore creates a new credential store backed by path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// Save persists credentials to disk, replacing any stored ones.
func (s *CredentialStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}

	provisionedAt := time.Now()
	if current != nil && !current.ProvisionedAt.IsZero() {
		provisionedAt = current.ProvisionedAt
	}

	return s.write(&state{
		Credentials:   &creds,
		ProvisionedAt: provisionedAt,
	})
}

// Load returns the stored credentials.
// Returns nil, nil if none are stored.
func (s *CredentialStore) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil || st == nil {
		return nil, err
	}
	return st.Credentials, nil
}

// IsProvisioned reports whether credentials are stored.
// The controller consults this exactly once at boot.
func (s *CredentialStore) IsProvisioned() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return false, err
	}
	return st != nil && st.Credentials != nil, nil
}

// Clear removes stored credentials. Part of the reset sequence; a device
// with no stored credentials clears to the same empty state.
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(&state{})
}

// read loads the on-disk state. Returns nil, nil if the file doesn't exist.
func (s *CredentialStore) read() (*state, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse credential store: %w", err)
	}
	return &st, nil
}

// write persists the state, creating the parent directory if needed.
func (s *CredentialStore) write(st *state) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	st.Version = StateVersion
	st.SavedAt = time.Now()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credential store: %w", err)
	}

	return os.WriteFile(s.path, data, 0600)
}
