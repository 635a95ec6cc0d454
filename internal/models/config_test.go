package models

import (
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every configuration variable; viper treats empty
// variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(strings.ToUpper(key), "")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_ACCESS_CODE", "code-123")
	t.Setenv("TOPIC_ARN", "arn:aws:sns:us-east-1:000000000000:traffic-alerts")
	t.Setenv("REGION", "eu-west-1")

	cfg, err := LoadConfig(viper.New(), "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Region != "eu-west-1" {
		t.Errorf("expected region eu-west-1, got %s", cfg.Region)
	}
	if cfg.APIAccessCode != "code-123" {
		t.Errorf("expected access code from env, got %s", cfg.APIAccessCode)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.HTTPTimeout)
	}
	if cfg.KeyStrategy != KeyStrategyEphemeral || cfg.Notifier != NotifierSNS || cfg.StorageProvider != StorageS3 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.SecretName != "traffic-monitoring-secrets" || cfg.BucketName != "traffic-monitoring-data-bucket" {
		t.Errorf("unexpected resource names %s / %s", cfg.SecretName, cfg.BucketName)
	}
	if cfg.HasStaticCredentials() {
		t.Error("expected default credential chain")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api_access_code: from-file
notifier: kafka
kafka_broker_list: localhost:9092
key_strategy: vault
http_timeout: 5s
aws_access_key_id: AKIDEXAMPLE
aws_secret_access_key: secret
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadConfig(viper.New(), path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Notifier != NotifierKafka || cfg.KafkaTopic != "traffic-alerts" {
		t.Errorf("unexpected kafka settings %s / %s", cfg.Notifier, cfg.KafkaTopic)
	}
	if cfg.KeyStrategy != KeyStrategyVault {
		t.Errorf("expected vault key strategy, got %s", cfg.KeyStrategy)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.HTTPTimeout)
	}
	if !cfg.HasStaticCredentials() {
		t.Error("expected static credentials")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing access code", map[string]string{"TOPIC_ARN": "arn"}},
		{"sns without topic", map[string]string{"API_ACCESS_CODE": "c"}},
		{"unknown key strategy", map[string]string{"API_ACCESS_CODE": "c", "TOPIC_ARN": "arn", "KEY_STRATEGY": "rotating"}},
		{"half a key pair", map[string]string{"API_ACCESS_CODE": "c", "TOPIC_ARN": "arn", "AWS_ACCESS_KEY_ID": "AKID"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(viper.New(), ""); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
