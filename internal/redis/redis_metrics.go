package redis

import "sync/atomic"

// RedisMetrics - cache metrics, counters are atomics
type RedisMetrics struct {
	CacheHit  atomic.Uint64
	CacheMiss atomic.Uint64
}

// Hit increments the CacheHit counter by 1
func (m *RedisMetrics) Hit() {
	m.CacheHit.Add(1)
}

// Miss increments the CacheMiss counter by 1
func (m *RedisMetrics) Miss() {
	m.CacheMiss.Add(1)
}
