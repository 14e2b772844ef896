package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
)

// lockTTL keeps an abandoned admission lock from wedging a slot for long.
const lockTTL = 5 * time.Second

// RedisLocker serializes booking admission per patient/treatment/day key
// with SETNX. The owner value guards against releasing someone else's lock.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) TryLock(
	ctx context.Context,
	key string,
) (bool, string, error) {

	owner := uuid.NewString()
	acquired, err := l.client.SetNX(ctx, key, owner, lockTTL).Result()
	if err != nil {
		return false, "", err
	}
	return acquired, owner, nil
}

func (l *RedisLocker) Unlock(
	ctx context.Context,
	key string,
	owner string,
) error {

	current, err := l.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if current != owner {
		return nil
	}

	return l.client.Del(ctx, key).Err()
}

// Compile-time check
var _ domain.Locker = (*RedisLocker)(nil)
