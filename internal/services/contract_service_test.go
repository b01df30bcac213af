package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"easytrack/internal/database"
	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/redis"
	"easytrack/internal/redis/redis_mocks"
)

// testContract returns a fully populated contract record
func testContract() *models.Contract {
	return &models.Contract{
		ID:      "CTR-1001",
		Pickup:  &models.LatLng{Lat: 14.5995, Lng: 120.9842},
		Dropoff: &models.LatLng{Lat: 14.5547, Lng: 121.0244},
		Current: &models.LatLng{Lat: 14.58, Lng: 121.0},
		Status:  "in_transit",
	}
}

// TestApplyPatchOverwritesIncomingFields verifies incoming fields overwrite and
// the longitude-first pair is converted at the boundary
func TestApplyPatchOverwritesIncomingFields(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)
	contract := testContract()

	status := "arriving"
	patch := &models.ContractPatch{
		CurrentGeo: &models.GeoPoint{Coordinates: [2]float64{121.02, 14.55}},
		Status:     &status,
	}

	changed := svc.ApplyPatch(contract, patch)

	assert.True(t, changed)
	assert.Equal(t, &models.LatLng{Lat: 14.55, Lng: 121.02}, contract.Current)
	assert.Equal(t, "arriving", contract.Status)
	// Absent fields stay untouched
	assert.Equal(t, &models.LatLng{Lat: 14.5995, Lng: 120.9842}, contract.Pickup)
	assert.Equal(t, &models.LatLng{Lat: 14.5547, Lng: 121.0244}, contract.Dropoff)
}

// TestApplyPatchIsIdempotent verifies merging the same patch twice leaves the
// record in the same state and reports no movement the second time
func TestApplyPatchIsIdempotent(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)
	contract := testContract()

	patch := &models.ContractPatch{
		CurrentGeo: &models.GeoPoint{Coordinates: [2]float64{121.02, 14.55}},
	}

	assert.True(t, svc.ApplyPatch(contract, patch))
	after := *contract

	assert.False(t, svc.ApplyPatch(contract, patch))
	assert.Equal(t, after, *contract)
}

func TestApplyPatchEmptyPatch(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)
	contract := testContract()
	before := *contract

	changed := svc.ApplyPatch(contract, &models.ContractPatch{})

	assert.False(t, changed)
	assert.Equal(t, before, *contract)
}

// TestApplyPatchStatusOnly verifies a status-only patch does not count as movement
func TestApplyPatchStatusOnly(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)
	contract := testContract()

	status := "delivered"
	changed := svc.ApplyPatch(contract, &models.ContractPatch{Status: &status})

	assert.False(t, changed)
	assert.Equal(t, "delivered", contract.Status)
}

func TestMergeReloadKeepsLocalHistory(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)

	previous := testContract()
	previous.RouteHistory = []models.LatLng{{Lat: 14.58, Lng: 121.0}, {Lat: 14.57, Lng: 121.01}}
	fresh := testContract()

	svc.MergeReload(previous, fresh)

	assert.Equal(t, previous.RouteHistory, fresh.RouteHistory)
}

func TestMergeReloadPrefersServerHistory(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)

	previous := testContract()
	previous.RouteHistory = []models.LatLng{{Lat: 14.58, Lng: 121.0}}
	fresh := testContract()
	serverHistory := []models.LatLng{{Lat: 14.59, Lng: 120.99}, {Lat: 14.58, Lng: 121.0}}
	fresh.RouteHistory = serverHistory

	svc.MergeReload(previous, fresh)

	assert.Equal(t, serverHistory, fresh.RouteHistory)
}

func TestMergeReloadDifferentContract(t *testing.T) {
	svc := NewContractService(nil, nil, logger.NewTest(), 15)

	previous := testContract()
	previous.RouteHistory = []models.LatLng{{Lat: 14.58, Lng: 121.0}}
	fresh := testContract()
	fresh.ID = "CTR-2002"

	svc.MergeReload(previous, fresh)

	assert.Empty(t, fresh.RouteHistory)
}

// TestAppendWaypointDeduplicates verifies a repeated position is not appended twice
func TestAppendWaypointDeduplicates(t *testing.T) {
	// The write-back goroutine hits a dead endpoint and logs the failure only
	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable")
	require.NoError(t, err)
	defer sqlDB.Close()

	svc := NewContractService(&database.DB{DB: sqlDB}, nil, logger.NewTest(), 1)
	contract := testContract()
	pt := models.LatLng{Lat: 14.57, Lng: 121.01}

	svc.AppendWaypoint(contract, pt)
	assert.Equal(t, []models.LatLng{pt}, contract.RouteHistory)

	svc.AppendWaypoint(contract, pt)
	assert.Equal(t, []models.LatLng{pt}, contract.RouteHistory)

	next := models.LatLng{Lat: 14.56, Lng: 121.02}
	svc.AppendWaypoint(contract, next)
	assert.Equal(t, []models.LatLng{pt, next}, contract.RouteHistory)
}

// TestLoadFromCache verifies a cached record short-circuits the database fetch
func TestLoadFromCache(t *testing.T) {
	mockRedis := redis_mocks.NewMockRedisClientInterface(t)
	cached := testContract()

	cacheKey := redis.GenerateKey(redis.KeyPrefixContract, cached.ID)
	mockRedis.
		On("Get", mock.Anything, cacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*models.Contract)
			*dest = *cached
		}).
		Return(nil).Once()
	mockRedis.On("Hit").Once()

	svc := NewContractService(nil, mockRedis, logger.NewTest(), 15)

	contract, err := svc.Load(context.Background(), cached.ID)

	assert.NoError(t, err)
	assert.Equal(t, cached, contract)
	mockRedis.AssertExpectations(t)
}

// TestLoadCacheMissFetchFails verifies a backend failure after a cache miss is
// reported as a transport error
func TestLoadCacheMissFetchFails(t *testing.T) {
	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable")
	require.NoError(t, err)
	defer sqlDB.Close()

	mockRedis := redis_mocks.NewMockRedisClientInterface(t)
	mockRedis.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("key not found")).Once()
	mockRedis.On("Miss").Once()

	svc := NewContractService(&database.DB{DB: sqlDB}, mockRedis, logger.NewTest(), 1)

	contract, err := svc.Load(context.Background(), "CTR-1001")

	assert.Nil(t, contract)
	var transportErr *models.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
