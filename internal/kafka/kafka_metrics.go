package kafka

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"
	"easytrack/internal/models"

	"github.com/IBM/sarama"
)

// TopicMetrics - metrics of one consumed topic
type TopicMetrics struct {
	TotalProcessedEvents    atomic.Uint64
	Errors                  atomic.Uint64
	TotalProcessingDuration atomic.Uint64
}

// KafkaMetrics - consumer metrics across all topics
type KafkaMetrics struct {
	mux        sync.RWMutex
	Statistics map[string]*TopicMetrics
	TotalLag   int64
}

func NewKafkaMetrics() *KafkaMetrics {
	return &KafkaMetrics{
		Statistics: make(map[string]*TopicMetrics),
	}
}

// RecordEvent records the outcome of one processed message
func (m *KafkaMetrics) RecordEvent(topic string, duration int64, hasError bool) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if _, exists := m.Statistics[topic]; !exists {
		m.Statistics[topic] = &TopicMetrics{}
	}

	topicMetrics := m.Statistics[topic]
	topicMetrics.TotalProcessedEvents.Add(1)
	topicMetrics.TotalProcessingDuration.Add(uint64(duration))

	if hasError {
		topicMetrics.Errors.Add(1)
	}
}

// GetStatistics builds the JSON response object of the consumer metrics
func (m *KafkaMetrics) GetStatistics() *models.KafkaMetricsResponse {
	m.mux.RLock()
	defer m.mux.RUnlock()

	stats := &models.KafkaMetricsResponse{
		TotalLag:   m.TotalLag,
		Statistics: make([]models.KafkaTopicMetricsResponse, 0, len(m.Statistics)),
	}

	for topic, metrics := range m.Statistics {
		totalEvents := metrics.TotalProcessedEvents.Load()
		totalDuration := metrics.TotalProcessingDuration.Load()

		// Average processing duration per message
		avg := "0 ms"
		if totalEvents > 0 {
			avgDur := totalDuration / totalEvents
			avg = fmt.Sprintf("%d ms", avgDur)
		}

		stats.Statistics = append(stats.Statistics, models.KafkaTopicMetricsResponse{
			Topic:                 topic,
			TotalProcessedEvents:  totalEvents,
			Errors:                metrics.Errors.Load(),
			AvgProcessingDuration: avg,
		})
	}

	return stats
}

// LagMonitor periodically measures the consumer-group lag
type LagMonitor struct {
	client      sarama.Client
	admin       sarama.ClusterAdmin
	groupID     string
	log         *logger.Logger
	consumerLag int64
	ticker      *time.Ticker
}

func NewLagMonitor(cfg *config.KafkaConfig, log *logger.Logger) (*LagMonitor, error) {
	clientConfig := sarama.NewConfig()
	client, err := sarama.NewClient(cfg.Brokers, clientConfig)
	if err != nil {
		log.WithError(err).Error("Error occurred during creation of Kafka client for Lag Monitor")
		return nil, err
	}
	admin, err := sarama.NewClusterAdmin(cfg.Brokers, clientConfig)
	if err != nil {
		log.WithError(err).Error("Error occurred during creation of Kafka admin client for Lag Monitor")
		return nil, err
	}

	interval := time.Duration(cfg.MonitorInterval) * time.Minute

	return &LagMonitor{
		client:      client,
		admin:       admin,
		groupID:     cfg.GroupID,
		log:         log,
		consumerLag: cfg.ConsumerLag,
		ticker:      time.NewTicker(interval),
	}, nil
}

// Start runs the lag monitor
func (m *LagMonitor) Start(metrics *KafkaMetrics) {
	go func() {
		for range m.ticker.C {
			m.RecordLag(metrics)
		}
	}()
}

// Stop stops the lag monitor
func (m *LagMonitor) Stop() {
	m.ticker.Stop()
}

// RecordLag measures the total consumer lag and stores it in the metrics
func (m *LagMonitor) RecordLag(metrics *KafkaMetrics) {
	// Committed offsets of every partition of every consumed topic
	groupOffsets, err := m.admin.ListConsumerGroupOffsets(m.groupID, nil)
	if err != nil {
		m.log.WithError(err).Error("Failed to get consumer group offsets")
		return
	}

	totalLag := int64(0)
	for topic, partitions := range groupOffsets.Blocks {
		for partitionID, partitionBlock := range partitions {
			if partitionBlock.Offset == -1 {
				continue
			}

			// Offset the next write to the partition would get
			newestOffset, err := m.client.GetOffset(topic, partitionID, sarama.OffsetNewest)
			if err != nil {
				m.log.WithError(err).Error("Failed to get partition offset")
				continue
			}

			lag := newestOffset - partitionBlock.Offset
			totalLag += lag
		}
	}

	// Alert in the logs when the overall lag exceeds the configured threshold
	if totalLag > m.consumerLag {
		m.log.WithFields(map[string]interface{}{
			"lag": totalLag,
		}).Warn("ALERT: High Consumer Lag detected in whole system")
	}
	metrics.TotalLag = totalLag
}
