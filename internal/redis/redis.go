package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/database"
	"easytrack/internal/logger"
	"easytrack/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client represents the Redis client of the tracking service
type Client struct {
	client  *redis.Client
	log     *logger.Logger
	metrics *RedisMetrics
}

// Connect creates the Redis connection
func Connect(cfg *config.RedisConfig, log *logger.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Connection check
	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis")

	return &Client{
		client:  rdb,
		log:     log,
		metrics: &RedisMetrics{},
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Set stores a value with a TTL
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	err = c.client.Set(ctx, key, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	c.log.WithField("key", key).Debug("Value set in Redis")
	return nil
}

// Get retrieves a value by key
func (c *Client) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("key %s not found", key)
		}
		return fmt.Errorf("failed to get key %s: %w", key, err)
	}

	err = json.Unmarshal([]byte(val), dest)
	if err != nil {
		return fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}

	c.log.WithField("key", key).Debug("Value retrieved from Redis")
	return nil
}

// Delete removes a value by key
func (c *Client) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	c.log.WithField("key", key).Debug("Key deleted from Redis")
	return nil
}

// Exists checks whether a key is present
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check if key %s exists: %w", key, err)
	}

	return exists > 0, nil
}

// Health checks the Redis connection
func (c *Client) Health(ctx context.Context) error {
	_, err := c.client.Ping(ctx).Result()
	return err
}

// CacheWarmingContracts preloads contracts that are currently moving, so the first
// tracking request after a restart does not hit Postgres
func (c *Client) CacheWarmingContracts(db *database.DB) error {
	query := `
		SELECT id, pickup_location_geo, drop_off_location_geo, current_location_geo, route_history, status
		FROM contracts WHERE status IN ($1, $2)
	`
	rows, err := db.Query(query, statusAccepted, statusInTransit)
	if err != nil {
		c.log.WithError(err).Error("Failed to make a SQL-query")
		return err
	}
	defer rows.Close()

	pipe := c.client.Pipeline()
	ctx := context.Background()
	for rows.Next() {
		var (
			id, status                     string
			pickupRaw, dropoffRaw, currRaw []byte
			historyRaw                     []byte
		)
		if err = rows.Scan(&id, &pickupRaw, &dropoffRaw, &currRaw, &historyRaw, &status); err != nil {
			return fmt.Errorf("failed to scan contracts: %w", err)
		}

		contract := &models.Contract{ID: id, Status: status}
		contract.Pickup = decodeGeoColumn(pickupRaw)
		contract.Dropoff = decodeGeoColumn(dropoffRaw)
		contract.Current = decodeGeoColumn(currRaw)
		if len(historyRaw) > 0 {
			if err := json.Unmarshal(historyRaw, &contract.RouteHistory); err != nil {
				c.log.WithError(err).WithField("contract_id", id).Warn("Skipping contract with malformed route history")
				continue
			}
		}

		cacheKey := GenerateKey(KeyPrefixContract, id)
		data, err := json.Marshal(contract)
		if err != nil {
			c.log.WithError(err).Error("Failed to marshal contract")
			return err
		}
		pipe.Set(ctx, cacheKey, data, defaultCacheTTL)
	}
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.log.Info("Warmed up Redis cache with in-transit contracts")
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

func (c *Client) Hit() { c.metrics.Hit() }

func (c *Client) Miss() { c.metrics.Miss() }

// GetMetrics returns the hit/miss counters and the current cache size
func (c *Client) GetMetrics(ctx context.Context) (uint64, uint64, int64, error) {
	hits := c.metrics.CacheHit.Load()
	misses := c.metrics.CacheMiss.Load()
	cacheSize, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to load cache size: %w", err)
	}
	return hits, misses, cacheSize, err
}

// GenerateKey builds a cache key from a prefix and an id
func GenerateKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// Key prefix constants
const (
	KeyPrefixContract     = "contract"
	KeyPrefixReferenceLeg = "reference_leg"
)

// Constants used by the cache warmer
const (
	defaultCacheTTL = 15 * time.Minute
	statusAccepted  = "accepted"
	statusInTransit = "in_transit"
)
