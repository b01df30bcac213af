package services

import (
	"context"
	"math"
	"sync"
	"time"

	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/redis"
	"easytrack/internal/routing"
)

// The pickup->dropoff reference leg never changes for a contract, so it can be
// cached aggressively
const referenceLegTTL = 15 * time.Hour

// DirectionsService computes delivery progress with exactly two routing queries
// per run, under a fixed cooldown between runs
type DirectionsService struct {
	provider routing.Provider
	cache    redis.RedisClientInterface
	log      *logger.Logger
	cooldown time.Duration
	now      func() time.Time

	mux           sync.Mutex
	lastRequestAt time.Time
}

// NewDirectionsService creates a new directions engine
func NewDirectionsService(provider routing.Provider, cache redis.RedisClientInterface, log *logger.Logger, cooldownSeconds int) *DirectionsService {
	return &DirectionsService{
		provider: provider,
		cache:    cache,
		log:      log,
		cooldown: time.Duration(cooldownSeconds) * time.Second,
		now:      time.Now,
	}
}

// CooldownRemaining returns the whole seconds left before the next run is
// allowed, zero when no run happened yet or the window has elapsed
func (s *DirectionsService) CooldownRemaining() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.cooldownRemainingLocked()
}

func (s *DirectionsService) cooldownRemainingLocked() int {
	if s.lastRequestAt.IsZero() {
		return 0
	}
	elapsed := s.now().Sub(s.lastRequestAt)
	if elapsed >= s.cooldown {
		return 0
	}
	return int(math.Ceil((s.cooldown - elapsed).Seconds()))
}

// Reset clears the cooldown, used when the tracked contract changes
func (s *DirectionsService) Reset() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.lastRequestAt = time.Time{}
}

// Compute runs one directions query pair for the contract. Preconditions are
// checked in order: provider readiness, presence of all three positions, the
// cooldown window. The window starts at request start, not completion
func (s *DirectionsService) Compute(ctx context.Context, contract *models.Contract) (*models.RouteQueryResult, error) {
	if s.provider == nil || !s.provider.Ready() {
		return nil, models.ErrServiceUnavailable
	}

	switch {
	case contract.Current == nil:
		return nil, &models.MissingLocationError{Which: "current"}
	case contract.Pickup == nil:
		return nil, &models.MissingLocationError{Which: "pickup"}
	case contract.Dropoff == nil:
		return nil, &models.MissingLocationError{Which: "dropoff"}
	}

	s.mux.Lock()
	if remaining := s.cooldownRemainingLocked(); remaining > 0 {
		s.mux.Unlock()
		return nil, &models.CooldownActiveError{RemainingSeconds: remaining}
	}
	s.lastRequestAt = s.now()
	s.mux.Unlock()

	current, pickup, dropoff := *contract.Current, *contract.Pickup, *contract.Dropoff

	// Both legs are issued together: the remaining leg with live traffic when the
	// backend has it, the reference leg free-flow so the trip baseline stays fixed
	var (
		wg                   sync.WaitGroup
		remainingLeg, refLeg *models.Leg
		remainingErr, refErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		remainingLeg, remainingErr = s.provider.Route(ctx, current, dropoff, true)
	}()
	go func() {
		defer wg.Done()
		refLeg, refErr = s.referenceLeg(ctx, contract.ID, pickup, dropoff)
	}()
	wg.Wait()

	if remainingErr != nil {
		s.log.WithError(remainingErr).WithField("contract_id", contract.ID).Error("Remaining-leg query failed")
		return nil, &models.DirectionsError{Err: remainingErr}
	}
	if refErr != nil {
		s.log.WithError(refErr).WithField("contract_id", contract.ID).Error("Reference-leg query failed")
		return nil, &models.DirectionsError{Err: refErr}
	}

	distanceRemaining := remainingLeg.DistanceMeters / 1000
	totalDistance := refLeg.DistanceMeters / 1000

	duration := remainingLeg.DurationSeconds
	if remainingLeg.DurationInTraffic != nil {
		duration = *remainingLeg.DurationInTraffic
	}

	// Guard the undefined division instead of propagating NaN
	progress := 0.0
	if totalDistance > 0 {
		progress = clamp(0, 100, (1-distanceRemaining/totalDistance)*100)
	}

	result := &models.RouteQueryResult{
		ETA:                 s.now().Add(time.Duration(duration * float64(time.Second))),
		DistanceRemainingKm: distanceRemaining,
		TotalDistanceKm:     totalDistance,
		ProgressPercent:     progress,
		Polyline:            remainingLeg.Path,
	}

	s.log.WithFields(map[string]interface{}{
		"contract_id":           contract.ID,
		"distance_remaining_km": result.DistanceRemainingKm,
		"total_distance_km":     result.TotalDistanceKm,
		"progress_percent":      result.ProgressPercent,
	}).Info("Directions computed")

	return result, nil
}

// referenceLeg returns the pickup->dropoff leg, cache-first
func (s *DirectionsService) referenceLeg(ctx context.Context, contractID string, pickup, dropoff models.LatLng) (*models.Leg, error) {
	cacheKey := redis.GenerateKey(redis.KeyPrefixReferenceLeg, contractID)

	var cached models.Leg
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		s.cache.Hit()
		return &cached, nil
	}
	s.cache.Miss()

	leg, err := s.provider.Route(ctx, pickup, dropoff, false)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, leg, referenceLegTTL); err != nil {
		s.log.WithError(err).Debug("Failed to cache reference leg")
	}

	return leg, nil
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
