package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"easytrack/internal/database"
	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/redis"
)

const defaultCacheTTL = 15 * time.Minute

// ContractService is the location store of the tracking core: it fetches full
// contract records, merges realtime patches into them and writes the travelled
// route history back, best effort
type ContractService struct {
	db           *database.DB
	redisClient  redis.RedisClientInterface
	log          *logger.Logger
	fetchTimeout time.Duration
}

// NewContractService creates a new contract store
func NewContractService(db *database.DB, redisClient redis.RedisClientInterface, log *logger.Logger, fetchTimeoutSeconds int) *ContractService {
	return &ContractService{
		db:           db,
		redisClient:  redisClient,
		log:          log,
		fetchTimeout: time.Duration(fetchTimeoutSeconds) * time.Second,
	}
}

// Load fetches the full contract record, read-through the cache. A missing row
// is ErrContractNotFound; any backend failure is a TransportError
func (s *ContractService) Load(ctx context.Context, contractID string) (*models.Contract, error) {
	// Cache first
	cacheKey := redis.GenerateKey(redis.KeyPrefixContract, contractID)
	var cached models.Contract
	if err := s.redisClient.Get(ctx, cacheKey, &cached); err == nil {
		s.redisClient.Hit()
		s.log.WithField("contract_id", contractID).Debug("Contract retrieved from cache")
		return &cached, nil
	}
	s.redisClient.Miss()

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	query := `
		SELECT id, pickup_location_geo, drop_off_location_geo, current_location_geo, route_history, status
		FROM contracts WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, query, contractID)

	var (
		id, status                     string
		pickupRaw, dropoffRaw, currRaw []byte
		historyRaw                     []byte
	)
	err := row.Scan(&id, &pickupRaw, &dropoffRaw, &currRaw, &historyRaw, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrContractNotFound
	}
	if err != nil {
		s.log.WithError(err).WithField("contract_id", contractID).Error("Failed to fetch contract")
		return nil, &models.TransportError{Err: err}
	}

	contract := &models.Contract{ID: id, Status: status}
	contract.Pickup = decodeGeoColumn(pickupRaw)
	contract.Dropoff = decodeGeoColumn(dropoffRaw)
	contract.Current = decodeGeoColumn(currRaw)
	if len(historyRaw) > 0 {
		// Malformed history is tolerated: tracking still works without the travelled path
		if err := json.Unmarshal(historyRaw, &contract.RouteHistory); err != nil {
			s.log.WithError(err).WithField("contract_id", contractID).Warn("Malformed route history in storage")
		}
	}

	if err := s.redisClient.Set(ctx, cacheKey, contract, defaultCacheTTL); err != nil {
		s.log.WithError(err).Error("Failed to cache contract")
		// The fetch succeeded, a cache failure is not the caller's problem
	}

	s.log.WithField("contract_id", contractID).Debug("Contract loaded from database")
	return contract, nil
}

// ApplyPatch merges a partial record into the contract: incoming fields
// overwrite, absent fields are retained, nothing is validated. Returns whether
// the current position changed
func (s *ContractService) ApplyPatch(contract *models.Contract, patch *models.ContractPatch) bool {
	prev := contract.Current

	if patch.PickupGeo != nil {
		contract.Pickup = patch.PickupGeo.ToLatLng()
	}
	if patch.DropoffGeo != nil {
		contract.Dropoff = patch.DropoffGeo.ToLatLng()
	}
	if patch.CurrentGeo != nil {
		contract.Current = patch.CurrentGeo.ToLatLng()
	}
	if len(patch.RouteHistory) > 0 {
		contract.RouteHistory = patch.RouteHistory
	}
	if patch.Status != nil {
		contract.Status = *patch.Status
	}

	return !contract.Current.Equal(prev)
}

// MergeReload carries locally accumulated route history into a reloaded record
// when the server-side history is empty; a non-empty server value wins
func (s *ContractService) MergeReload(previous, fresh *models.Contract) {
	if previous == nil || fresh == nil || previous.ID != fresh.ID {
		return
	}
	if len(fresh.RouteHistory) == 0 {
		fresh.RouteHistory = previous.RouteHistory
	}
}

// AppendWaypoint appends a travelled waypoint to the in-memory history and
// schedules the fire-and-forget write-back. Write-back failures are logged only
func (s *ContractService) AppendWaypoint(contract *models.Contract, pt models.LatLng) {
	if n := len(contract.RouteHistory); n > 0 && contract.RouteHistory[n-1].Equal(&pt) {
		return
	}
	contract.RouteHistory = append(contract.RouteHistory, pt)

	history := make([]models.LatLng, len(contract.RouteHistory))
	copy(history, contract.RouteHistory)
	contractID := contract.ID

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
		defer cancel()
		if err := s.saveRouteHistory(ctx, contractID, history); err != nil {
			s.log.WithError(err).WithField("contract_id", contractID).Warn("Route history write-back failed")
		}
	}()
}

// saveRouteHistory persists the accumulated waypoint array
func (s *ContractService) saveRouteHistory(ctx context.Context, contractID string, history []models.LatLng) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal route history: %w", err)
	}

	query := `UPDATE contracts SET route_history = $1 WHERE id = $2`
	if _, err := s.db.ExecContext(ctx, query, data, contractID); err != nil {
		return fmt.Errorf("failed to update route history: %w", err)
	}

	// The cached record is stale now
	cacheKey := redis.GenerateKey(redis.KeyPrefixContract, contractID)
	if err := s.redisClient.Delete(ctx, cacheKey); err != nil {
		s.log.WithError(err).Debug("Failed to invalidate contract cache")
	}

	return nil
}

// decodeGeoColumn parses a longitude-first geo column; malformed values yield no point
func decodeGeoColumn(raw []byte) *models.LatLng {
	if len(raw) == 0 {
		return nil
	}
	var pt models.GeoPoint
	if err := json.Unmarshal(raw, &pt); err != nil {
		return nil
	}
	return pt.ToLatLng()
}
