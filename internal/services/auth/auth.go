package auth

import (
	"errors"

	"github.com/bobby/zonesync/internal/util"
)

const ServiceName = "zonesync"

// Keyring entry names for the stored AWS credential pair.
const (
	AccessKeyEntry = "aws-access-key-id"
	SecretKeyEntry = "aws-secret-access-key"
)

var ErrSecretNotFound = errors.New("credential not found")

// Store holds named secrets for the tool.
type Store interface {
	SetSecret(name string, value string) error
	GetSecret(name string) (string, error)
	DeleteSecret(name string) error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeEntry normalizes an entry name for consistent key lookup.
func NormalizeEntry(name string) string {
	return util.NormalizeKey(name)
}
