package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/infra/backend"
	"github.com/expense-tracker/backend/internal/integration/persistence/redisstore"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to a shared miniredis instance.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisConnOnce.Do(
			func() {
				redisConn = openRedisConn()
			},
		)
	}

	return redisConn
}

func openRedisConn() *redis.Client {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return conn
}

// ClearRedis drops every key.
func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}

// RedisBackend wires the redis stores on top of client.
func RedisBackend(client *redis.Client) *backend.Backend {
	return &backend.Backend{
		Ledgers:    redisstore.NewLedgerStore(client),
		Users:      redisstore.NewUserRepository(client),
		Categories: redisstore.NewCustomCategoryStore(client),
		HealthCheck: func(ctx context.Context) bool {
			return client.Ping(ctx).Err() == nil
		},
	}
}
