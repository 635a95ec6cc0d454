package cmd

import (
	"context"
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/awsconfig"
	"github.com/chrisdamba/trafficwatch/internal/cloudwriter"
	"github.com/chrisdamba/trafficwatch/internal/handler"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"github.com/chrisdamba/trafficwatch/internal/notifier"
	"github.com/chrisdamba/trafficwatch/internal/sealer"
	"github.com/chrisdamba/trafficwatch/internal/secrets"
	"github.com/chrisdamba/trafficwatch/internal/trafficapi"
)

// buildHandler wires every collaborator from configuration. The returned
// cleanup releases the Kafka producer when one was created.
func buildHandler(ctx context.Context, cfg *models.Config) (*handler.Handler, func(), error) {
	awsCfg, err := awsconfig.Load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store := secrets.NewSecretsManagerStoreFromConfig(awsCfg)

	keys, err := sealer.NewKeySource(cfg.KeyStrategy, store, cfg.SecretName)
	if err != nil {
		return nil, nil, err
	}

	var factory cloudwriter.CloudWriterFactory
	switch cfg.StorageProvider {
	case models.StorageS3:
		factory = cloudwriter.NewS3WriterFactoryFromConfig(awsCfg)
	case models.StorageLocal:
		factory = cloudwriter.NewLocalWriterFactory(cfg.OutputFolder)
	default:
		return nil, nil, fmt.Errorf("unsupported storage provider: %s", cfg.StorageProvider)
	}

	cleanup := func() {}
	var publisher notifier.Publisher
	switch cfg.Notifier {
	case models.NotifierSNS:
		publisher = notifier.NewSNSPublisherFromConfig(awsCfg, cfg.TopicARN)
	case models.NotifierKafka:
		kafka, err := notifier.NewKafkaPublisher(cfg.KafkaBrokerList, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		publisher = kafka
		cleanup = func() { kafka.Close() }
	default:
		return nil, nil, fmt.Errorf("unsupported notifier: %s", cfg.Notifier)
	}

	h := handler.New(handler.Deps{
		Credentials: awsCfg.Credentials,
		Secrets:     store,
		SecretName:  cfg.SecretName,
		Fetcher:     trafficapi.NewClient(cfg.TrafficAPIURL, cfg.APIAccessCode, cfg.HTTPTimeout),
		Sealer:      sealer.New(keys),
		Archive:     cloudwriter.NewArchive(factory, cfg.BucketName),
		Publisher:   publisher,
	})
	return h, cleanup, nil
}
