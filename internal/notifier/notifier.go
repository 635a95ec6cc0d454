// Package notifier publishes traffic alerts to a topic.
package notifier

import (
	"context"
	"fmt"
	"github.com/IBM/sarama"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"log"
	"strings"
	"time"
)

// Publisher sends exactly one message per call.
type Publisher interface {
	Publish(ctx context.Context, alert Alert) error
}

type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client   PublishAPI
	topicARN string
}

func NewSNSPublisher(client PublishAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

func NewSNSPublisherFromConfig(cfg aws.Config, topicARN string) *SNSPublisher {
	return NewSNSPublisher(sns.NewFromConfig(cfg), topicARN)
}

// Publish sends the alert with the requester's email as a String message
// attribute so subscriptions can filter on it.
func (p *SNSPublisher) Publish(ctx context.Context, alert Alert) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(FormatMessage(alert)),
		Subject:  aws.String(Subject),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"email": {
				DataType:    aws.String("String"),
				StringValue: alert.Email,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish alert to %s: %w", p.topicARN, err)
	}
	return nil
}

// KafkaPublisher writes alerts to a Kafka topic. The email is both the
// message key and an "email" header; the subject travels as a header too.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers, topic string) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	// Retries are left to the caller.
	saramaConfig.Producer.Retry.Max = 0
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second

	brokerList := strings.Split(brokers, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokerList)
	return NewKafkaPublisherWithProducer(producer, topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (k *KafkaPublisher) Publish(ctx context.Context, alert Alert) error {
	if k.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(orNone(alert.Email)),
		Value: sarama.StringEncoder(FormatMessage(alert)),
		Headers: []sarama.RecordHeader{
			{Key: []byte("email"), Value: []byte(orNone(alert.Email))},
			{Key: []byte("subject"), Value: []byte(Subject)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send alert to topic %s: %w", k.topic, err)
	}
	return nil
}

func (k *KafkaPublisher) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
