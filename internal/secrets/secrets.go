// Package secrets reads JSON secrets from AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

const (
	FieldSubscriptionKey = "subscription_key"
	FieldEncryptionKey   = "encryption_key"
)

// Store returns the key/value pairs held in a named secret.
type Store interface {
	Get(ctx context.Context, name string) (Secret, error)
}

type Secret map[string]string

// FieldError is returned when a secret lacks a required entry or holds an
// unusable value.
type FieldError struct {
	Secret string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("secret %s entry %s: %s", e.Secret, e.Field, e.Reason)
}

// Require returns the value of field or a FieldError.
func (s Secret) Require(secretName, field string) (string, error) {
	v, ok := s[field]
	if !ok || v == "" {
		return "", &FieldError{Secret: secretName, Field: field, Reason: "missing"}
	}
	return v, nil
}

type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretsManagerStore struct {
	client GetSecretValueAPI
}

func NewSecretsManagerStore(client GetSecretValueAPI) *SecretsManagerStore {
	return &SecretsManagerStore{client: client}
}

func NewSecretsManagerStoreFromConfig(cfg aws.Config) *SecretsManagerStore {
	return NewSecretsManagerStore(secretsmanager.NewFromConfig(cfg))
}

func (s *SecretsManagerStore) Get(ctx context.Context, name string) (Secret, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", name)
	}

	var secret Secret
	if err := json.Unmarshal([]byte(*out.SecretString), &secret); err != nil {
		return nil, fmt.Errorf("secret %s is not a JSON object of strings: %w", name, err)
	}
	return secret, nil
}
