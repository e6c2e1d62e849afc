package session

import (
	"context" // Context for Redis operations
	"strconv" // User id encoding
	"time"    // TTL durations

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore keeps sessions and flashes in Redis. Expiry is delegated to key
// TTLs, so an idle session simply disappears.
type RedisStore struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of session and flash keys
}

// NewRedisStore returns a Redis-backed session store with the given TTL.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// userKey builds the Redis key holding the token's user binding
func userKey(token string) string { return "session:user:" + token }

// flashKey builds the Redis key holding the token's pending flash
func flashKey(token string) string { return "session:flash:" + token }

// Bind associates the token with a user id for the store's TTL
func (s *RedisStore) Bind(ctx context.Context, token string, userID uint) error {
	return s.rdb.Set(ctx, userKey(token), strconv.Itoa(int(userID)), s.ttl).Err()
}

// UserID resolves the token to a user id, refreshing the TTL on hit
func (s *RedisStore) UserID(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, userKey(token)).Result()
	if err == redis.Nil {
		return 0, false, nil // Token unbound or expired
	} else if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	// Sliding expiry: activity keeps the session alive
	_ = s.rdb.Expire(ctx, userKey(token), s.ttl).Err()
	return uint(id), true, nil
}

// Clear drops the token's user binding
func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, userKey(token)).Err()
}

// SetFlash stores the next-request status message
func (s *RedisStore) SetFlash(ctx context.Context, token, msg string) error {
	return s.rdb.Set(ctx, flashKey(token), msg, s.ttl).Err()
}

// PopFlash atomically reads and deletes the pending message
func (s *RedisStore) PopFlash(ctx context.Context, token string) (string, error) {
	val, err := s.rdb.GetDel(ctx, flashKey(token)).Result()
	if err == redis.Nil {
		return "", nil // No pending flash
	}
	return val, err
}
