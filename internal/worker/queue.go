package worker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrEmpty is returned by Pop and TryPop when no message is available.
var ErrEmpty = errors.New("queue is empty")

// Queue is a set of named FIFO lists. Producers push to the head, consumers
// pop from the tail.
type Queue interface {
	Push(ctx context.Context, queue string, data []byte) error
	// Pop blocks up to timeout for a message on any of queues.
	Pop(ctx context.Context, timeout time.Duration, queues ...string) (string, []byte, error)
	TryPop(ctx context.Context, queue string) ([]byte, error)
	Len(ctx context.Context, queue string) (int64, error)
}

// RedisQueue keeps each queue in a Redis list (LPUSH / BRPOP).
type RedisQueue struct {
	rdb *redis.Client
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb}
}

func (q *RedisQueue) Push(ctx context.Context, queue string, data []byte) error {
	return q.rdb.LPush(ctx, queue, data).Err()
}

// Pop waits on BRPOP; zero CPU while idle.
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration, queues ...string) (string, []byte, error) {
	res, err := q.rdb.BRPop(ctx, timeout, queues...).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, ErrEmpty
	}
	if err != nil {
		return "", nil, err
	}
	if len(res) < 2 {
		return "", nil, ErrEmpty
	}
	return res[0], []byte(res[1]), nil
}

func (q *RedisQueue) TryPop(ctx context.Context, queue string) ([]byte, error) {
	data, err := q.rdb.RPop(ctx, queue).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	return data, err
}

func (q *RedisQueue) Len(ctx context.Context, queue string) (int64, error) {
	return q.rdb.LLen(ctx, queue).Result()
}
