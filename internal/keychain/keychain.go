// Package keychain mirrors stored secrets into the OS keyring.
// The JSON database stays authoritative; the mirror is an opt-in copy for
// applications that read credentials from the platform keychain.
package keychain

import (
	"fmt"

	"github.com/99designs/keyring"

	"github.com/crab-sh/crab/internal/vault"
)

// DefaultService is the keyring service name unless overridden in config.
const DefaultService = "crab"

// Mirror wraps an open OS keyring.
type Mirror struct {
	ring keyring.Keyring
}

// Open connects to the OS keyring under the given service name.
func Open(service string) (*Mirror, error) {
	if service == "" {
		service = DefaultService
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              service,
		KeychainTrustApplication: true, // macOS: don't prompt on every access
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &Mirror{ring: ring}, nil
}

// Sync writes every entry's secret into the keyring, keyed by service
// name with the account as the label. Returns the number of entries
// written.
func (m *Mirror) Sync(store *vault.Store) (int, error) {
	count := 0
	for _, entry := range store.Entries() {
		item := keyring.Item{
			Key:   entry.Service,
			Data:  []byte(entry.Secret),
			Label: entry.Account,
		}
		if err := m.ring.Set(item); err != nil {
			return count, fmt.Errorf("keyring set failed for '%s': %w", entry.Service, err)
		}
		count++
	}
	return count, nil
}

// Clear removes every mirrored key from the keyring, including keys for
// services that no longer exist in the database. Returns the number of
// keys removed.
func (m *Mirror) Clear() (int, error) {
	keys, err := m.ring.Keys()
	if err != nil {
		return 0, fmt.Errorf("keyring list failed: %w", err)
	}

	count := 0
	for _, key := range keys {
		if err := m.ring.Remove(key); err != nil && err != keyring.ErrKeyNotFound {
			return count, fmt.Errorf("keyring remove failed for '%s': %w", key, err)
		}
		count++
	}
	return count, nil
}
