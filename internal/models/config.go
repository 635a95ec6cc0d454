package models

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"io/fs"
	"time"
)

const (
	KeyStrategyEphemeral = "ephemeral"
	KeyStrategyVault     = "vault"

	NotifierSNS   = "sns"
	NotifierKafka = "kafka"

	StorageS3    = "s3"
	StorageLocal = "local"
)

type Config struct {
	Region             string        `mapstructure:"region" validate:"required"`
	AWSAccessKeyID     string        `mapstructure:"aws_access_key_id" validate:"required_with=AWSSecretAccessKey"`
	AWSSecretAccessKey string        `mapstructure:"aws_secret_access_key" validate:"required_with=AWSAccessKeyID"`
	APIAccessCode      string        `mapstructure:"api_access_code" validate:"required"`
	TrafficAPIURL      string        `mapstructure:"traffic_api_url" validate:"required,url"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
	SecretName         string        `mapstructure:"secret_name" validate:"required"`
	BucketName         string        `mapstructure:"bucket_name" validate:"required"`
	StorageProvider    string        `mapstructure:"storage_provider" validate:"oneof=s3 local"`
	OutputFolder       string        `mapstructure:"output_folder" validate:"required_if=StorageProvider local"`
	KeyStrategy        string        `mapstructure:"key_strategy" validate:"oneof=ephemeral vault"`
	Notifier           string        `mapstructure:"notifier" validate:"oneof=sns kafka"`
	TopicARN           string        `mapstructure:"topic_arn" validate:"required_if=Notifier sns"`
	KafkaBrokerList    string        `mapstructure:"kafka_broker_list" validate:"required_if=Notifier kafka"`
	KafkaTopic         string        `mapstructure:"kafka_topic" validate:"required_if=Notifier kafka"`
}

var configKeys = []string{
	"region", "aws_access_key_id", "aws_secret_access_key", "api_access_code",
	"traffic_api_url", "http_timeout", "secret_name", "bucket_name",
	"storage_provider", "output_folder", "key_strategy", "notifier",
	"topic_arn", "kafka_broker_list", "kafka_topic",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("region", "us-east-1")
	v.SetDefault("traffic_api_url", "https://funcappazuremap.azurewebsites.net/api/azureMapApi")
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("secret_name", "traffic-monitoring-secrets")
	v.SetDefault("bucket_name", "traffic-monitoring-data-bucket")
	v.SetDefault("storage_provider", StorageS3)
	v.SetDefault("output_folder", "output")
	v.SetDefault("key_strategy", KeyStrategyEphemeral)
	v.SetDefault("notifier", NotifierSNS)
	v.SetDefault("kafka_topic", "traffic-alerts")
}

// LoadConfig reads configuration from an optional config file, a .env file
// in the working directory and the process environment, in increasing order
// of precedence.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	setDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about, so
	// bind each one explicitly to its upper-cased variable.
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HasStaticCredentials reports whether an explicit key pair was configured.
func (cfg *Config) HasStaticCredentials() bool {
	return cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != ""
}
