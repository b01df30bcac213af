package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"easytrack/internal/kafka"
	"easytrack/internal/logger"
	"easytrack/internal/maprender"
	"easytrack/internal/models"
)

// TrackerService sequences the tracking lifecycle for one active contract:
// load -> render -> subscribe -> one automatic directions run, with a full
// reset whenever the tracked contract id changes. It is the single caller of
// the renderer, so map state never races between realtime moves and redraws
type TrackerService struct {
	contracts  ContractServiceInterface
	directions DirectionsServiceInterface
	renderer   *maprender.Renderer
	feed       RealtimeFeedInterface
	producer   kafka.ProducerInterface
	log        *logger.Logger

	mux     sync.Mutex
	session *trackingSession
	gen     uint64
}

// trackingSession is the state of one tracked contract. A generation number
// ties every in-flight operation to the session it was launched for; results
// arriving after the generation moved on are discarded
type trackingSession struct {
	gen              uint64
	contractID       string
	state            models.SessionState
	contract         *models.Contract
	result           *models.RouteQueryResult
	unsubscribe      func()
	autoRan          bool
	cooldownSecs     int
	countdownRunning bool
}

// NewTrackerService creates the tracking controller
func NewTrackerService(contracts ContractServiceInterface, directions DirectionsServiceInterface, renderer *maprender.Renderer, feed RealtimeFeedInterface, producer kafka.ProducerInterface, log *logger.Logger) *TrackerService {
	return &TrackerService{
		contracts:  contracts,
		directions: directions,
		renderer:   renderer,
		feed:       feed,
		producer:   producer,
		log:        log,
	}
}

// Start begins tracking the given contract id, tearing down whatever session
// came before it. On success the renderer shows the initial view, the realtime
// subscription is live and one automatic directions run has been attempted
func (t *TrackerService) Start(ctx context.Context, contractID string) (*models.TrackingSnapshot, error) {
	t.mux.Lock()
	var previous *models.Contract
	if t.session != nil {
		previous = t.session.contract
	}
	t.teardownLocked()
	t.gen++
	gen := t.gen
	t.session = &trackingSession{gen: gen, contractID: contractID, state: models.SessionLoading}
	t.mux.Unlock()

	contract, err := t.contracts.Load(ctx, contractID)

	t.mux.Lock()
	if t.session == nil || t.session.gen != gen {
		t.mux.Unlock()
		// A newer Start superseded this one while the fetch was in flight
		return nil, models.ErrNoActiveSession
	}

	if err != nil {
		if errors.Is(err, models.ErrContractNotFound) {
			t.session.state = models.SessionNotFound
		} else {
			t.session.state = models.SessionError
		}
		snapshot := t.snapshotLocked()
		t.mux.Unlock()
		return snapshot, err
	}

	t.contracts.MergeReload(previous, contract)
	t.session.contract = contract

	// Render failures degrade the map pane, they do not fail the session
	if err := t.renderer.Initialize(contract); err != nil {
		t.log.WithError(err).WithField("contract_id", contractID).Error("Failed to initialize map view")
	}
	if err := t.renderer.DrawRoute(ctx, contract.Waypoints()); err != nil {
		t.log.WithError(err).WithField("contract_id", contractID).Error("Failed to draw travelled route")
	}

	t.session.unsubscribe = t.feed.Subscribe(contractID)
	t.session.state = models.SessionLoaded

	if err := t.producer.PublishSessionStarted(contractID); err != nil {
		t.log.WithError(err).Error("Failed to publish session started event")
	}

	autoRun := !t.session.autoRan
	t.session.autoRan = true
	t.mux.Unlock()

	// Exactly one automatic run per load; later runs are user-triggered only
	if autoRun {
		if _, err := t.RunDirections(ctx); err != nil {
			var missing *models.MissingLocationError
			if errors.As(err, &missing) {
				t.log.WithField("contract_id", contractID).Info("Automatic directions run skipped: " + missing.Error())
			} else if !errors.Is(err, models.ErrNoActiveSession) {
				t.log.WithError(err).Warn("Automatic directions run failed")
			}
		}
	}

	t.log.WithField("contract_id", contractID).Info("Tracking session started")
	return t.Snapshot(), nil
}

// RunDirections performs one directions run for the active session. The result
// is dropped, not applied, when the session changed while the queries were in
// flight
func (t *TrackerService) RunDirections(ctx context.Context) (*models.TrackingSnapshot, error) {
	t.mux.Lock()
	if t.session == nil || t.session.state != models.SessionLoaded {
		t.mux.Unlock()
		return nil, models.ErrNoActiveSession
	}
	gen := t.session.gen
	contractID := t.session.contractID
	// A by-value copy pins the positions this run was launched with
	contractCopy := *t.session.contract
	t.mux.Unlock()

	result, err := t.directions.Compute(ctx, &contractCopy)

	t.mux.Lock()
	defer t.mux.Unlock()

	if t.session == nil || t.session.gen != gen {
		t.log.WithField("contract_id", contractID).Debug("Discarding directions result for a stale session")
		return nil, models.ErrNoActiveSession
	}

	// Any attempt that reached the engine may have started the cooldown window
	t.session.cooldownSecs = t.directions.CooldownRemaining()
	t.startCountdownLocked()

	if err != nil {
		return t.snapshotLocked(), err
	}

	t.session.result = result
	if err := t.renderer.SetRoutePolyline(result.Polyline); err != nil {
		t.log.WithError(err).Error("Failed to draw route polyline")
	}
	if err := t.producer.PublishRouteComputed(contractID, result); err != nil {
		t.log.WithError(err).Error("Failed to publish route computed event")
	}

	return t.snapshotLocked(), nil
}

// HandleContractEvent is the realtime feed handler: it merges the patch into
// the store and, when the current position moved, updates the marker, extends
// the travelled history and schedules the write-back
func (t *TrackerService) HandleContractEvent(ctx context.Context, event *models.ContractEvent) error {
	t.mux.Lock()
	defer t.mux.Unlock()

	if t.session == nil || t.session.state != models.SessionLoaded || t.session.contractID != event.ContractID {
		return nil
	}

	changed := t.contracts.ApplyPatch(t.session.contract, &event.Payload)
	if !changed || t.session.contract.Current == nil {
		return nil
	}

	pos := *t.session.contract.Current

	if err := t.renderer.MoveCurrentMarker(pos); err != nil {
		t.log.WithError(err).Error("Failed to move current-location marker")
	}
	t.contracts.AppendWaypoint(t.session.contract, pos)

	if err := t.producer.PublishLocationMoved(event.ContractID, pos); err != nil {
		t.log.WithError(err).Error("Failed to publish location moved event")
	}

	return nil
}

// Snapshot returns the current view of the session for the UI
func (t *TrackerService) Snapshot() *models.TrackingSnapshot {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.snapshotLocked()
}

// Stop tears the active session down
func (t *TrackerService) Stop() {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.teardownLocked()
	t.session = nil
}

func (t *TrackerService) snapshotLocked() *models.TrackingSnapshot {
	if t.session == nil {
		return &models.TrackingSnapshot{State: models.SessionIdle}
	}

	snapshot := &models.TrackingSnapshot{
		ContractID:      t.session.contractID,
		State:           t.session.state,
		Route:           t.session.result,
		CooldownSeconds: t.session.cooldownSecs,
	}
	if t.session.contract != nil {
		snapshot.Status = t.session.contract.Status
	}
	if t.session.state == models.SessionLoaded {
		snapshot.Map = t.renderer.ViewState()
	}
	return snapshot
}

// teardownLocked releases the subscription, clears the map and resets the
// engine state of the previous session
func (t *TrackerService) teardownLocked() {
	if t.session == nil {
		return
	}
	if t.session.unsubscribe != nil {
		t.session.unsubscribe()
	}
	t.renderer.Reset()
	t.directions.Reset()
	t.gen++
	t.session = nil
}

// startCountdownLocked keeps the published cooldown value ticking down once per
// second until it reaches zero or the session changes
func (t *TrackerService) startCountdownLocked() {
	if t.session == nil || t.session.countdownRunning || t.session.cooldownSecs == 0 {
		return
	}
	t.session.countdownRunning = true
	gen := t.session.gen

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.mux.Lock()
			if t.session == nil || t.session.gen != gen {
				t.mux.Unlock()
				return
			}
			remaining := t.directions.CooldownRemaining()
			t.session.cooldownSecs = remaining
			if remaining == 0 {
				t.session.countdownRunning = false
				t.mux.Unlock()
				return
			}
			t.mux.Unlock()
		}
	}()
}
