package worker

// Periodically moves dead-lettered graph mirror jobs back onto their queue.
// Guarded by a Redis lock so one replica replays at a time, and skipped while
// the graph breaker is open.

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"groceryhub/internal/infra"

	"github.com/bsm/redislock"
	"github.com/rs/zerolog/log"
)

const (
	replayLockKey     = "locks:mirror_replay"
	replayBatchSize   = 50
	defaultMaxReplays = 5
	// ParkedPrefix holds jobs that exhausted their replays.
	ParkedPrefix = "parked:"
)

// LockFunc obtains a named lock for ttl. It returns redislock.ErrNotObtained
// when another holder has it.
type LockFunc func(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)

// RedisLock adapts a redislock client to LockFunc.
func RedisLock(c *redislock.Client) LockFunc {
	return func(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
		lock, err := c.Obtain(ctx, key, ttl, nil)
		if err != nil {
			return nil, err
		}
		return lock.Release, nil
	}
}

type ReplayConfig struct {
	Queue      Queue
	Lock       LockFunc
	Breaker    *infra.Breaker
	Interval   time.Duration
	BatchSize  int
	MaxReplays int
}

// StartReplayCron launches the replay goroutine. It respects ctx for shutdown.
func StartReplayCron(ctx context.Context, cfg ReplayConfig) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = replayBatchSize
	}
	if cfg.MaxReplays <= 0 {
		cfg.MaxReplays = defaultMaxReplays
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("replay_cron: started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("replay_cron: shutting down")
				return
			case <-ticker.C:
				replayOnce(ctx, cfg)
			}
		}
	}()
}

// replayOnce returns how many jobs went back onto the mirror queue.
func replayOnce(ctx context.Context, cfg ReplayConfig) int {
	if cfg.Breaker.State() == infra.BreakerOpen {
		log.Debug().Msg("replay_cron: circuit breaker is open, skipping tick")
		return 0
	}

	release, err := cfg.Lock(ctx, replayLockKey, cfg.Interval)
	if errors.Is(err, redislock.ErrNotObtained) {
		log.Debug().Msg("replay_cron: another replica holds the lock")
		return 0
	}
	if err != nil {
		log.Warn().Err(err).Msg("replay_cron: lock failed")
		return 0
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			log.Warn().Err(err).Msg("replay_cron: release failed")
		}
	}()

	dlqKey := DLQPrefix + QueueGraphMirror
	replayed := 0
	for i := 0; i < cfg.BatchSize; i++ {
		// Stop mid-batch if the sink went down again.
		if cfg.Breaker.State() == infra.BreakerOpen {
			break
		}
		raw, err := cfg.Queue.TryPop(ctx, dlqKey)
		if errors.Is(err, ErrEmpty) {
			break
		}
		if err != nil {
			log.Warn().Err(err).Msg("replay_cron: dlq pop failed")
			break
		}

		var entry DLQEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			log.Error().Err(err).Msg("replay_cron: dropping unreadable dlq entry")
			continue
		}
		if entry.Replays >= cfg.MaxReplays {
			pushEntry(ctx, cfg.Queue, ParkedPrefix+QueueGraphMirror, entry)
			continue
		}

		data, err := entry.Job().Encode()
		if err == nil {
			err = cfg.Queue.Push(ctx, entry.OriginalQueue, data)
		}
		if err != nil {
			log.Warn().Err(err).Str("job_type", entry.JobType).Msg("replay_cron: requeue failed")
			pushEntry(ctx, cfg.Queue, dlqKey, entry)
			break
		}
		jobsTotal.WithLabelValues(entry.JobType, "replayed").Inc()
		replayed++
	}
	if replayed > 0 {
		log.Info().Int("count", replayed).Msg("replay_cron: jobs replayed")
	}
	return replayed
}
