package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"
	"easytrack/internal/models"

	"github.com/IBM/sarama"
)

// EventHandler processes one realtime event
type EventHandler func(ctx context.Context, event *models.ContractEvent) error

// Consumer represents the Kafka consumer of the realtime contract-update feed.
// Delivery is scoped to one contract id at a time: events for any other contract
// are acknowledged and dropped before a handler ever sees them
type Consumer struct {
	consumer    sarama.ConsumerGroup
	log         *logger.Logger
	handlers    map[models.EventType]EventHandler
	topics      []string
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	maxRetries  int
	dlqProducer *DLQProducer
	metrics     *KafkaMetrics

	mux          sync.RWMutex
	subscribedID string
	generation   uint64
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(cfg *config.KafkaConfig, log *logger.Logger, dlqProducer *DLQProducer, metrics *KafkaMetrics) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Session.Timeout = 10 * time.Second
	config.Consumer.Group.Heartbeat.Interval = 3 * time.Second

	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	topics := []string{cfg.Topics.ContractUpdates}

	log.Info("Kafka consumer created successfully")

	return &Consumer{
		consumer:    consumer,
		log:         log,
		handlers:    make(map[models.EventType]EventHandler),
		topics:      topics,
		ctx:         ctx,
		cancel:      cancel,
		maxRetries:  3,
		dlqProducer: dlqProducer,
		metrics:     metrics,
	}, nil
}

// RegisterHandler registers a handler for an event type
func (c *Consumer) RegisterHandler(eventType models.EventType, handler EventHandler) {
	c.handlers[eventType] = handler
	c.log.WithField("event_type", eventType).Info("Event handler registered")
}

// Subscribe scopes event delivery to the given contract id. The previous scope,
// if any, is released first. The returned cancel releases this scope unless a
// newer subscription has already replaced it
func (c *Consumer) Subscribe(contractID string) func() {
	c.mux.Lock()
	c.subscribedID = contractID
	c.generation++
	gen := c.generation
	c.mux.Unlock()

	c.log.WithField("contract_id", contractID).Info("Realtime subscription established")

	return func() {
		c.mux.Lock()
		defer c.mux.Unlock()
		if c.generation != gen {
			// A newer subscription took over, nothing to release
			return
		}
		c.subscribedID = ""
		c.log.WithField("contract_id", contractID).Info("Realtime subscription released")
	}
}

// subscribedContract returns the currently scoped contract id
func (c *Consumer) subscribedContract() string {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.subscribedID
}

// Start runs the consumer loop
func (c *Consumer) Start() error {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-c.ctx.Done():
				return
			default:
				if err := c.consumer.Consume(c.ctx, c.topics, c); err != nil {
					c.log.WithError(err).Error("Error consuming messages")
				}
			}
		}
	}()

	c.log.Info("Kafka consumer started")
	return nil
}

// Stop stops the consumer
func (c *Consumer) Stop() error {
	c.cancel()
	c.wg.Wait()
	return c.consumer.Close()
}

// Setup implements the sarama.ConsumerGroupHandler interface
func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup implements the sarama.ConsumerGroupHandler interface
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim implements the sarama.ConsumerGroupHandler interface
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			correlationID := getCorrelationID(message)

			// Process the message and measure the processing duration
			start := time.Now()
			err := c.processMessageWithRetries(message, correlationID)
			duration := time.Since(start).Milliseconds()

			c.metrics.RecordEvent(message.Topic, duration, err != nil)

			// On failure hand the message to the DLQ
			if err != nil {
				c.log.WithFields(map[string]interface{}{
					"correlation_id": correlationID,
					"error":          err,
					"topic":          message.Topic,
					"partition":      message.Partition,
					"offset":         message.Offset,
				}).Error("Failed to process message")
				if dlqErr := c.dlqProducer.PublishFailedEvent(message, err.Error(), correlationID); dlqErr != nil {
					return dlqErr
				}
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// processMessageWithRetries decodes a message, applies the subscription filter and
// dispatches to the registered handler with bounded retries
func (c *Consumer) processMessageWithRetries(message *sarama.ConsumerMessage, correlationID string) error {
	var event models.ContractEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	// Events for contracts nobody is tracking are dropped here, so a stale
	// subscription can never leak another contract's updates into a session
	active := c.subscribedContract()
	if active == "" || event.ContractID != active {
		c.log.WithFields(map[string]interface{}{
			"correlation_id": correlationID,
			"contract_id":    event.ContractID,
		}).Debug("Event outside subscription scope, skipping")
		return nil
	}

	c.log.WithFields(map[string]interface{}{
		"correlation_id": correlationID,
		"event_type":     event.Type,
		"event_id":       event.ID,
		"topic":          message.Topic,
	}).Debug("Processing event...")

	handler, exists := c.handlers[event.Type]
	if !exists {
		c.log.WithFields(map[string]interface{}{
			"correlation_id": correlationID,
			"event_type":     event.Type,
		}).Warn("No handler registered for event type")
		return fmt.Errorf("no handler registered for event type %s", event.Type)
	}

	var lastErr error
	for i := 1; i <= c.maxRetries; i++ {
		if lastErr = handler(c.ctx, &event); lastErr == nil {
			c.log.WithField("event_id", event.ID.String()).Debug("Message was successfully processed")
			return nil
		}
		c.log.WithFields(map[string]interface{}{
			"correlation_id": correlationID,
			"event_id":       event.ID.String(),
			"attempt":        i,
		}).Warn("Failed to process message")
	}

	return lastErr
}
