//go:build integration

package worker

import (
	"context"
	"testing"
	"time"

	"groceryhub/internal/infra"

	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedisQueue(t *testing.T) (*RedisQueue, *redislock.Client) {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisQueue(rdb), infra.NewLocker(rdb)
}

func TestRedisQueue_FIFO(t *testing.T) {
	q, _ := setupRedisQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, QueueGraphMirror, []byte("first")))
	require.NoError(t, q.Push(ctx, QueueGraphMirror, []byte("second")))
	n, err := q.Len(ctx, QueueGraphMirror)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	queue, data, err := q.Pop(ctx, time.Second, QueueEmail, QueueGraphMirror)
	require.NoError(t, err)
	assert.Equal(t, QueueGraphMirror, queue)
	assert.Equal(t, "first", string(data))

	data, err = q.TryPop(ctx, QueueGraphMirror)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	_, err = q.TryPop(ctx, QueueGraphMirror)
	assert.ErrorIs(t, err, ErrEmpty)
	_, _, err = q.Pop(ctx, time.Second, QueueGraphMirror)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReplayLock_SingleHolder(t *testing.T) {
	q, locker := setupRedisQueue(t)
	ctx := context.Background()
	lock := RedisLock(locker)

	release, err := lock(ctx, replayLockKey, time.Minute)
	require.NoError(t, err)

	deadLetterJob, err := NewJob(JobItemDeleted, ItemRef{ID: "i1"})
	require.NoError(t, err)
	SendToDLQ(ctx, q, QueueGraphMirror, deadLetterJob, "sink unavailable")

	cfg := ReplayConfig{
		Queue: q, Lock: lock, Breaker: infra.NewBreaker(infra.DefaultBreakerConfig("graph")),
		Interval: time.Minute, BatchSize: 10, MaxReplays: 3,
	}
	assert.Zero(t, replayOnce(ctx, cfg), "lock held elsewhere")

	require.NoError(t, release(ctx))
	assert.Equal(t, 1, replayOnce(ctx, cfg))

	_, data, err := q.Pop(ctx, time.Second, QueueGraphMirror)
	require.NoError(t, err)
	job, err := DecodeJob(data)
	require.NoError(t, err)
	assert.Equal(t, JobItemDeleted, job.Type)
	assert.Equal(t, 1, job.Replays)
}
