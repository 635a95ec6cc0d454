package secrets

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"testing"
)

type fakeSecretsAPI struct {
	value    *string
	err      error
	secretID string
}

func (f *fakeSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.secretID = aws.ToString(params.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestGetSecret(t *testing.T) {
	api := &fakeSecretsAPI{value: aws.String(`{"subscription_key": "abc"}`)}
	store := NewSecretsManagerStore(api)

	secret, err := store.Get(context.Background(), "traffic-monitoring-secrets")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if api.secretID != "traffic-monitoring-secrets" {
		t.Errorf("expected secret id traffic-monitoring-secrets, got %s", api.secretID)
	}

	key, err := secret.Require("traffic-monitoring-secrets", FieldSubscriptionKey)
	if err != nil || key != "abc" {
		t.Errorf("Require = %q, %v", key, err)
	}

	_, err = secret.Require("traffic-monitoring-secrets", FieldEncryptionKey)
	var missing *FieldError
	if !errors.As(err, &missing) || missing.Field != FieldEncryptionKey {
		t.Errorf("expected FieldError for encryption_key, got %v", err)
	}
}

func TestGetSecretErrors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeSecretsAPI
	}{
		{"api failure", &fakeSecretsAPI{err: errors.New("boom")}},
		{"binary secret", &fakeSecretsAPI{}},
		{"not json", &fakeSecretsAPI{value: aws.String("plain")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSecretsManagerStore(tt.api).Get(context.Background(), "s"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
