package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const emailReservationKey = "account:email:%s"

// releaseReservation deletes the key only while it still holds our token, so
// an expired claim never removes someone else's.
var releaseReservation = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisEmailReservation struct {
	client *redis.Client
}

func NewRedisEmailReservation(client *redis.Client) *RedisEmailReservation {
	return &RedisEmailReservation{client: client}
}

func (r *RedisEmailReservation) Reserve(ctx context.Context, email string, ttl time.Duration) (func(context.Context) error, bool, error) {
	const op = "redis.emailReservation.Reserve"

	key := fmt.Sprintf(emailReservationKey, email)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, storageErr(op, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseReservation.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
			return storageErr("redis.emailReservation.Release", err)
		}
		return nil
	}
	return release, true, nil
}
