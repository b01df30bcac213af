package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"
	"easytrack/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer publishes tracking lifecycle events for dashboard consumers.
// Every publish is fire-and-forget from the caller's point of view: failures
// are logged by the caller and never fail the originating request
type Producer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
	topic    string
}

// NewProducer creates a new lifecycle-event producer
func NewProducer(cfg *config.KafkaConfig, log *logger.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		log.WithError(err).Error("failed to create producer")
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	log.Info("Producer created successfully")

	return &Producer{
		producer: producer,
		log:      log,
		topic:    cfg.Topics.TrackingEvents,
	}, nil
}

// Close closes the producer
func (p *Producer) Close() error { return p.producer.Close() }

// PublishSessionStarted publishes a tracking-session-started event
func (p *Producer) PublishSessionStarted(contractID string) error {
	return p.publish(models.EventSessionStarted, contractID, models.ContractPatch{})
}

// PublishRouteComputed publishes a route-computed event with the fresh metrics
func (p *Producer) PublishRouteComputed(contractID string, result *models.RouteQueryResult) error {
	event := struct {
		models.ContractEvent
		Route *models.RouteQueryResult `json:"route"`
	}{
		ContractEvent: newEvent(models.EventRouteComputed, contractID, models.ContractPatch{}),
		Route:         result,
	}
	return p.send(contractID, event)
}

// PublishLocationMoved publishes a current-location-rendered event
func (p *Producer) PublishLocationMoved(contractID string, position models.LatLng) error {
	return p.publish(models.EventLocationMoved, contractID, models.ContractPatch{
		CurrentGeo: models.FromLatLng(&position),
	})
}

func (p *Producer) publish(eventType models.EventType, contractID string, payload models.ContractPatch) error {
	return p.send(contractID, newEvent(eventType, contractID, payload))
}

func (p *Producer) send(contractID string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(contractID),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}
	_, _, err = p.producer.SendMessage(message)
	return err
}

func newEvent(eventType models.EventType, contractID string, payload models.ContractPatch) models.ContractEvent {
	return models.ContractEvent{
		ID:         uuid.New(),
		Type:       eventType,
		ContractID: contractID,
		Payload:    payload,
		Timestamp:  time.Now(),
	}
}
