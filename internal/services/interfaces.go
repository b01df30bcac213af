package services

import (
	"context"

	"easytrack/internal/models"
)

type ContractServiceInterface interface {
	Load(ctx context.Context, contractID string) (*models.Contract, error)
	ApplyPatch(contract *models.Contract, patch *models.ContractPatch) bool
	MergeReload(previous, fresh *models.Contract)
	AppendWaypoint(contract *models.Contract, pt models.LatLng)
}

type DirectionsServiceInterface interface {
	Compute(ctx context.Context, contract *models.Contract) (*models.RouteQueryResult, error)
	CooldownRemaining() int
	Reset()
}

type TrackerServiceInterface interface {
	Start(ctx context.Context, contractID string) (*models.TrackingSnapshot, error)
	RunDirections(ctx context.Context) (*models.TrackingSnapshot, error)
	Snapshot() *models.TrackingSnapshot
	Stop()
}

// RealtimeFeedInterface scopes realtime delivery to one contract id; the returned
// cancel releases the scope
type RealtimeFeedInterface interface {
	Subscribe(contractID string) func()
}

type KafkaMetricsServiceInterface interface {
	GetStatistics() *models.KafkaMetricsResponse
}

type RedisServiceInterface interface {
	GetStatistics(ctx context.Context) (*models.RedisMetricsResponse, error)
}
