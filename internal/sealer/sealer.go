// Package sealer encrypts output records with Fernet tokens.
package sealer

import (
	"context"
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"github.com/chrisdamba/trafficwatch/internal/secrets"
	"github.com/fernet/fernet-go"
	"time"
)

// KeySource yields the key used to seal one record.
type KeySource interface {
	Key(ctx context.Context) (*fernet.Key, error)
}

// EphemeralKeys generates a fresh key for every call and never stores it.
// Anything sealed with such a key cannot be opened again.
type EphemeralKeys struct{}

func (EphemeralKeys) Key(ctx context.Context) (*fernet.Key, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &k, nil
}

// VaultKeys reads a base64 Fernet key from the encryption_key entry of a
// secret.
type VaultKeys struct {
	Store      secrets.Store
	SecretName string
}

func (v *VaultKeys) Key(ctx context.Context) (*fernet.Key, error) {
	secret, err := v.Store.Get(ctx, v.SecretName)
	if err != nil {
		return nil, err
	}
	encoded, err := secret.Require(v.SecretName, secrets.FieldEncryptionKey)
	if err != nil {
		return nil, err
	}
	k, err := fernet.DecodeKey(encoded)
	if err != nil {
		return nil, &secrets.FieldError{Secret: v.SecretName, Field: secrets.FieldEncryptionKey, Reason: err.Error()}
	}
	return k, nil
}

// NewKeySource picks the key source for a configured strategy.
func NewKeySource(strategy string, store secrets.Store, secretName string) (KeySource, error) {
	switch strategy {
	case models.KeyStrategyEphemeral, "":
		return EphemeralKeys{}, nil
	case models.KeyStrategyVault:
		return &VaultKeys{Store: store, SecretName: secretName}, nil
	default:
		return nil, fmt.Errorf("unknown key strategy %q", strategy)
	}
}

type Sealer struct {
	keys KeySource
}

func New(keys KeySource) *Sealer {
	return &Sealer{keys: keys}
}

// Seal encrypts plaintext with a key obtained for this call only.
func (s *Sealer) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	k, err := s.keys.Key(ctx)
	if err != nil {
		return nil, err
	}
	token, err := fernet.EncryptAndSign(plaintext, k)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt record: %w", err)
	}
	return token, nil
}

// Open reverses Seal for tokens younger than ttl.
func Open(token []byte, k *fernet.Key, ttl time.Duration) ([]byte, error) {
	msg := fernet.VerifyAndDecrypt(token, ttl, []*fernet.Key{k})
	if msg == nil {
		return nil, fmt.Errorf("token could not be verified")
	}
	return msg, nil
}
