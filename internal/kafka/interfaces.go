package kafka

import "easytrack/internal/models"

// ProducerInterface - lifecycle-event publishing used by the tracking services
type ProducerInterface interface {
	Close() error
	PublishSessionStarted(contractID string) error
	PublishRouteComputed(contractID string, result *models.RouteQueryResult) error
	PublishLocationMoved(contractID string, position models.LatLng) error
}
