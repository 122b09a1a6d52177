package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"groceryhub/internal/infra"
	"groceryhub/internal/service"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory queue ────────────────────────────────────────────────────────

type memQueue struct {
	mu      sync.Mutex
	lists   map[string][][]byte
	pushErr error
}

func newMemQueue() *memQueue { return &memQueue{lists: make(map[string][][]byte)} }

func (q *memQueue) Push(_ context.Context, queue string, data []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pushErr != nil {
		return q.pushErr
	}
	q.lists[queue] = append([][]byte{data}, q.lists[queue]...)
	return nil
}

func (q *memQueue) Pop(ctx context.Context, timeout time.Duration, queues ...string) (string, []byte, error) {
	deadline := time.Now().Add(timeout)
	for {
		for _, name := range queues {
			if data, err := q.TryPop(ctx, name); err == nil {
				return name, data, nil
			}
		}
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		if time.Now().After(deadline) {
			return "", nil, ErrEmpty
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (q *memQueue) TryPop(_ context.Context, queue string) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	l := q.lists[queue]
	if len(l) == 0 {
		return nil, ErrEmpty
	}
	data := l[len(l)-1]
	q.lists[queue] = l[:len(l)-1]
	return data, nil
}

func (q *memQueue) Len(_ context.Context, queue string) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.lists[queue])), nil
}

func (q *memQueue) jobs(t *testing.T, queue string) []Job {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []Job
	for i := len(q.lists[queue]) - 1; i >= 0; i-- {
		j, err := DecodeJob(q.lists[queue][i])
		require.NoError(t, err)
		out = append(out, j)
	}
	return out
}

func (q *memQueue) entries(t *testing.T, key string) []DLQEntry {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []DLQEntry
	for i := len(q.lists[key]) - 1; i >= 0; i-- {
		var e DLQEntry
		require.NoError(t, json.Unmarshal(q.lists[key][i], &e))
		out = append(out, e)
	}
	return out
}

// ── In-memory graph sink ───────────────────────────────────────────────────

type memSink struct {
	mu      sync.Mutex
	stores  map[string]infra.StoreNode
	items   map[string]infra.ItemNode
	seen    map[string]int64 // highest version per item, tombstones included
	failing bool
	calls   int
}

func newMemSink() *memSink {
	return &memSink{
		stores: map[string]infra.StoreNode{},
		items:  map[string]infra.ItemNode{},
		seen:   map[string]int64{},
	}
}

func (s *memSink) do(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failing {
		return errors.New("neo4j: connection refused")
	}
	fn()
	return nil
}

func (s *memSink) UpsertStore(_ context.Context, n infra.StoreNode) error {
	return s.do(func() { s.stores[n.ID] = n })
}

func (s *memSink) newer(id string, version int64) bool {
	if v, ok := s.seen[id]; ok && v > version {
		return false
	}
	s.seen[id] = version
	return true
}

func (s *memSink) UpsertItem(_ context.Context, n infra.ItemNode) error {
	return s.do(func() {
		if s.newer(n.ID, n.Version) {
			s.items[n.ID] = n
		}
	})
}

func (s *memSink) DeleteItem(_ context.Context, id string, version int64) error {
	return s.do(func() {
		if s.newer(id, version) {
			delete(s.items, id)
		}
	})
}

type memSender struct {
	mu   sync.Mutex
	sent []EmailJobPayload
	err  error
}

func (m *memSender) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, EmailJobPayload{ToEmail: to, Subject: subject, Body: body})
	return nil
}

func openBreaker() *infra.Breaker {
	cb := infra.NewBreaker(infra.BreakerConfig{Name: "test", MaxFailures: 1, Cooldown: time.Hour})
	_ = cb.Call(func() error { return errors.New("boom") })
	return cb
}

func noLock(context.Context, string, time.Duration) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// ── Dispatcher ─────────────────────────────────────────────────────────────

func TestDispatcher_EnqueuesMirrorJobs(t *testing.T) {
	q := newMemQueue()
	d := NewDispatcher(q, "")
	storeID, itemID := uuid.New(), uuid.New()

	d.OnStoreUpserted(context.Background(), storeID, "Green Market", "Downtown")
	d.OnItemUpserted(context.Background(), itemID, "Milk", "Dairy", decimal.RequireFromString("2.50"), storeID)
	d.OnItemDeleted(context.Background(), itemID)
	d.Wait()

	jobs := q.jobs(t, QueueGraphMirror)
	require.Len(t, jobs, 3)
	types := map[string]Job{}
	for _, j := range jobs {
		types[j.Type] = j
	}

	var item infra.ItemNode
	require.NoError(t, json.Unmarshal(types[JobItemUpserted].Payload, &item))
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, "Dairy", item.TypeName)
	assert.True(t, decimal.RequireFromString("2.5").Equal(item.Price))
	assert.Equal(t, storeID.String(), item.StoreID)

	var ref ItemRef
	require.NoError(t, json.Unmarshal(types[JobItemDeleted].Payload, &ref))
	assert.Equal(t, itemID.String(), ref.ID)
}

func TestDispatcher_EnqueueFailureIsSwallowed(t *testing.T) {
	q := newMemQueue()
	q.pushErr = errors.New("redis down")
	d := NewDispatcher(q, "ops@example.com")

	assert.NotPanics(t, func() {
		d.OnStoreUpserted(context.Background(), uuid.New(), "Green Market", "Downtown")
		d.Wait()
	})
}

func TestDispatcher_LowStockMail(t *testing.T) {
	alert := service.LowStockAlert{
		ItemID: uuid.New(), ItemName: "Milk", StoreName: "Green Market",
		Quantity: 2, ReorderLevel: 10, StockStatus: "Low Stock",
	}

	q := newMemQueue()
	NewDispatcher(q, "").NotifyLowStock(context.Background(), alert)
	n, _ := q.Len(context.Background(), QueueEmail)
	assert.Zero(t, n, "no recipient configured")

	d := NewDispatcher(q, "ops@example.com")
	d.NotifyLowStock(context.Background(), alert)
	d.Wait()

	jobs := q.jobs(t, QueueEmail)
	require.Len(t, jobs, 1)
	var mail EmailJobPayload
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &mail))
	assert.Equal(t, "ops@example.com", mail.ToEmail)
	assert.Equal(t, "Low stock: Milk at Green Market", mail.Subject)
	assert.Contains(t, mail.Body, "Quantity in stock: 2")
}

// ── Pool ───────────────────────────────────────────────────────────────────

func TestPool_ProcessesUntilSuccess(t *testing.T) {
	q := newMemQueue()
	sink := newMemSink()
	p := NewPool(q, 3)
	p.backoff = 0
	NewMirrorWorker(sink, infra.NewBreaker(infra.DefaultBreakerConfig("graph"))).Register(p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx, 2)

	d := NewDispatcher(q, "")
	id := uuid.New()
	d.OnStoreUpserted(ctx, id, "Green Market", "Downtown")
	d.Wait()

	assert.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		_, ok := sink.stores[id.String()]
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	p.Wait()
}

func TestPool_DeadLettersAfterMaxAttempts(t *testing.T) {
	q := newMemQueue()
	p := NewPool(q, 3)
	p.backoff = 0
	calls := 0
	p.Register(QueueGraphMirror, JobStoreUpserted, JobHandlerFunc(func(context.Context, Job) error {
		calls++
		return errors.New("sink unavailable")
	}))

	job, err := NewJob(JobStoreUpserted, infra.StoreNode{ID: "s1", Name: "Green Market"})
	require.NoError(t, err)
	raw, _ := job.Encode()

	ctx := context.Background()
	p.process(ctx, QueueGraphMirror, raw)
	for i := 0; i < 2; i++ {
		next, err := q.TryPop(ctx, QueueGraphMirror)
		require.NoError(t, err)
		p.process(ctx, QueueGraphMirror, next)
	}

	assert.Equal(t, 3, calls)
	n, _ := q.Len(ctx, QueueGraphMirror)
	assert.Zero(t, n)
	entries := q.entries(t, DLQPrefix+QueueGraphMirror)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "sink unavailable", entries[0].Reason)
	assert.Equal(t, QueueGraphMirror, entries[0].OriginalQueue)
}

func TestPool_InvalidPayloadSkipsRetries(t *testing.T) {
	q := newMemQueue()
	p := NewPool(q, 5)
	NewMirrorWorker(newMemSink(), infra.NewBreaker(infra.DefaultBreakerConfig("graph"))).Register(p)

	raw, _ := Job{Type: JobItemUpserted, Payload: json.RawMessage(`"not an object"`)}.Encode()
	p.process(context.Background(), QueueGraphMirror, raw)

	entries := q.entries(t, DLQPrefix+QueueGraphMirror)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Attempts)
}

func TestPool_UnknownTypeAndGarbage(t *testing.T) {
	q := newMemQueue()
	p := NewPool(q, 3)

	raw, _ := Job{Type: "mystery", Payload: json.RawMessage(`{}`)}.Encode()
	p.process(context.Background(), QueueEmail, raw)
	p.process(context.Background(), QueueEmail, []byte("{{{"))

	entries := q.entries(t, DLQPrefix+QueueEmail)
	require.Len(t, entries, 2)
	assert.Equal(t, "mystery", entries[0].JobType)
	assert.Equal(t, "unknown", entries[1].JobType)
}

// ── Mirror worker ──────────────────────────────────────────────────────────

func TestMirrorWorker_AppliesJobs(t *testing.T) {
	sink := newMemSink()
	w := NewMirrorWorker(sink, infra.NewBreaker(infra.DefaultBreakerConfig("graph")))
	ctx := context.Background()

	up, _ := NewJob(JobItemUpserted, infra.ItemNode{ID: "i1", Name: "Milk", StoreID: "s1"})
	require.NoError(t, w.Handle(ctx, up))
	assert.Contains(t, sink.items, "i1")

	del, _ := NewJob(JobItemDeleted, ItemRef{ID: "i1"})
	require.NoError(t, w.Handle(ctx, del))
	assert.NotContains(t, sink.items, "i1")
}

func TestMirrorWorker_RetriedUpsertDoesNotReviveDeletedItem(t *testing.T) {
	q := newMemQueue()
	d := NewDispatcher(q, "")
	tick := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	itemID, storeID := uuid.New(), uuid.New()

	d.OnItemUpserted(context.Background(), itemID, "Milk", "Dairy", decimal.RequireFromString("2.50"), storeID)
	d.Wait()
	d.OnItemDeleted(context.Background(), itemID)
	d.Wait()

	var upsert, del Job
	for _, j := range q.jobs(t, QueueGraphMirror) {
		switch j.Type {
		case JobItemUpserted:
			upsert = j
		case JobItemDeleted:
			del = j
		}
	}
	require.NotEmpty(t, upsert.Type)
	require.NotEmpty(t, del.Type)

	sink := newMemSink()
	w := NewMirrorWorker(sink, infra.NewBreaker(infra.DefaultBreakerConfig("graph")))
	ctx := context.Background()

	// The delete lands first; the upsert arrives later from a retry.
	require.NoError(t, w.Handle(ctx, del))
	require.NoError(t, w.Handle(ctx, upsert))
	assert.NotContains(t, sink.items, itemID.String())

	// A restore after the delete carries a newer version and wins.
	d.OnItemUpserted(context.Background(), itemID, "Milk", "Dairy", decimal.RequireFromString("2.50"), storeID)
	d.Wait()
	jobs := q.jobs(t, QueueGraphMirror)
	restore := jobs[len(jobs)-1]
	require.Equal(t, JobItemUpserted, restore.Type)
	require.NoError(t, w.Handle(ctx, restore))
	assert.Contains(t, sink.items, itemID.String())
}

func TestMirrorWorker_BreakerFailsFast(t *testing.T) {
	sink := newMemSink()
	w := NewMirrorWorker(sink, openBreaker())

	job, _ := NewJob(JobStoreUpserted, infra.StoreNode{ID: "s1"})
	err := w.Handle(context.Background(), job)
	assert.ErrorIs(t, err, infra.ErrBreakerOpen)
	assert.Zero(t, sink.calls)
}

// ── Email worker ───────────────────────────────────────────────────────────

func TestEmailWorker(t *testing.T) {
	sender := &memSender{}
	w := NewEmailWorker(sender)

	job, _ := NewJob(JobLowStockEmail, EmailJobPayload{ToEmail: "ops@example.com", Subject: "Low stock", Body: "Milk"})
	require.NoError(t, w.Handle(context.Background(), job))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Low stock", sender.sent[0].Subject)

	empty, _ := NewJob(JobLowStockEmail, EmailJobPayload{Subject: "x"})
	require.NoError(t, w.Handle(context.Background(), empty))
	assert.Len(t, sender.sent, 1)

	sender.err = errors.New("smtp: 421")
	assert.Error(t, w.Handle(context.Background(), job))
}

// ── Replay cron ────────────────────────────────────────────────────────────

func deadLetter(t *testing.T, q *memQueue, replays int) {
	t.Helper()
	job, err := NewJob(JobStoreUpserted, infra.StoreNode{ID: uuid.NewString(), Name: "Green Market"})
	require.NoError(t, err)
	job.Attempts = 3
	job.Replays = replays
	SendToDLQ(context.Background(), q, QueueGraphMirror, job, "sink unavailable")
}

func TestReplayOnce_RequeuesWithFreshAttempts(t *testing.T) {
	q := newMemQueue()
	deadLetter(t, q, 0)
	deadLetter(t, q, 1)

	n := replayOnce(context.Background(), ReplayConfig{
		Queue: q, Lock: noLock, Breaker: infra.NewBreaker(infra.DefaultBreakerConfig("graph")),
		Interval: time.Minute, BatchSize: 10, MaxReplays: 5,
	})
	assert.Equal(t, 2, n)

	jobs := q.jobs(t, QueueGraphMirror)
	require.Len(t, jobs, 2)
	assert.Zero(t, jobs[0].Attempts)
	assert.Equal(t, 1, jobs[0].Replays)
	assert.Equal(t, 2, jobs[1].Replays)
	dlq, _ := DLQLength(context.Background(), q, QueueGraphMirror)
	assert.Zero(t, dlq)
}

func TestReplayOnce_ParksExhaustedJobs(t *testing.T) {
	q := newMemQueue()
	deadLetter(t, q, 5)

	n := replayOnce(context.Background(), ReplayConfig{
		Queue: q, Lock: noLock, Breaker: infra.NewBreaker(infra.DefaultBreakerConfig("graph")),
		Interval: time.Minute, BatchSize: 10, MaxReplays: 5,
	})
	assert.Zero(t, n)
	assert.Len(t, q.entries(t, ParkedPrefix+QueueGraphMirror), 1)
}

func TestReplayOnce_RespectsBatchSize(t *testing.T) {
	q := newMemQueue()
	for i := 0; i < 3; i++ {
		deadLetter(t, q, 0)
	}
	n := replayOnce(context.Background(), ReplayConfig{
		Queue: q, Lock: noLock, Breaker: infra.NewBreaker(infra.DefaultBreakerConfig("graph")),
		Interval: time.Minute, BatchSize: 2, MaxReplays: 5,
	})
	assert.Equal(t, 2, n)
	dlq, _ := DLQLength(context.Background(), q, QueueGraphMirror)
	assert.EqualValues(t, 1, dlq)
}

func TestReplayOnce_SkipsWhenBreakerOpenOrLocked(t *testing.T) {
	q := newMemQueue()
	deadLetter(t, q, 0)

	n := replayOnce(context.Background(), ReplayConfig{
		Queue: q, Lock: noLock, Breaker: openBreaker(), Interval: time.Minute, BatchSize: 10, MaxReplays: 5,
	})
	assert.Zero(t, n)

	held := func(context.Context, string, time.Duration) (func(context.Context) error, error) {
		return nil, redislock.ErrNotObtained
	}
	n = replayOnce(context.Background(), ReplayConfig{
		Queue: q, Lock: held, Breaker: infra.NewBreaker(infra.DefaultBreakerConfig("graph")),
		Interval: time.Minute, BatchSize: 10, MaxReplays: 5,
	})
	assert.Zero(t, n)

	dlq, _ := DLQLength(context.Background(), q, QueueGraphMirror)
	assert.EqualValues(t, 1, dlq)
}
