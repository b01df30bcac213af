package kafka

import (
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// getCorrelationID extracts the correlation_id header of a message or mints a new one
func getCorrelationID(msg *sarama.ConsumerMessage) string {
	for _, header := range msg.Headers {
		if string(header.Key) == "correlation_id" {
			return string(header.Value)
		}
	}
	return uuid.New().String()
}
