package kafka

import (
	"fmt"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"

	"github.com/IBM/sarama"
)

// DLQProducer is the Kafka producer feeding the Dead Letter Queue
type DLQProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
	topic    string
}

// NewDLQProducer returns a DLQProducer instance
func NewDLQProducer(cfg *config.KafkaConfig, log *logger.Logger) (*DLQProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		log.WithError(err).Error("failed to create DLQ producer")
		return nil, fmt.Errorf("failed to create DLQ producer: %w", err)
	}

	log.Info("DLQ producer created successfully")

	return &DLQProducer{
		producer: producer,
		log:      log,
		topic:    "dead_letter_queue",
	}, nil
}

// Close closes the DLQProducer
func (p *DLQProducer) Close() error { return p.producer.Close() }

// PublishFailedEvent publishes an unprocessable message to the DLQ
func (p *DLQProducer) PublishFailedEvent(msg *sarama.ConsumerMessage, originalErr, correlationID string) error {
	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(msg.Key),
		Value:     sarama.ByteEncoder(msg.Value),
		Timestamp: time.Now(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("original_topic"), Value: []byte(msg.Topic)},
			{Key: []byte("original_error"), Value: []byte(originalErr)},
			{Key: []byte("correlation_id"), Value: []byte(correlationID)},
		},
	}
	_, _, err := p.producer.SendMessage(message)
	return err
}
