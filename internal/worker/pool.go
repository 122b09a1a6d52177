package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"groceryhub/internal/infra"
	"groceryhub/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	QueueGraphMirror = "jobs:graph_mirror"
	QueueEmail       = "jobs:email"
)

// Job types.
const (
	JobStoreUpserted = "store_upserted"
	JobItemUpserted  = "item_upserted"
	JobItemDeleted   = "item_deleted"
	JobLowStockEmail = "low_stock_email"
)

const (
	enqueueTimeout = 2 * time.Second
	popTimeout     = 5 * time.Second
)

var jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "groceryhub_jobs_total",
	Help: "Background jobs by type and outcome.",
}, []string{"type", "outcome"})

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
	Replays  int             `json:"replays,omitempty"`
}

func NewJob(jobType string, payload any) (Job, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("encode %s payload: %w", jobType, err)
	}
	return Job{Type: jobType, Payload: data}, nil
}

func (j Job) Encode() ([]byte, error) { return json.Marshal(j) }

func DecodeJob(raw []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(raw, &j); err != nil {
		return Job{}, fmt.Errorf("decode job: %w", err)
	}
	if j.Type == "" {
		return Job{}, errors.New("decode job: missing type")
	}
	return j, nil
}

// ErrInvalidPayload marks a job that can never succeed; it is dead-lettered
// without further attempts.
var ErrInvalidPayload = errors.New("invalid job payload")

func decodePayload(job Job, v any) error {
	if err := json.Unmarshal(job.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, job.Type, err)
	}
	return nil
}

// ── Dispatcher ─────────────────────────────────────────────────────────────

// Dispatcher turns service notifications into queued jobs. It implements
// service.GraphMirror and service.StockNotifier; every enqueue happens on its
// own goroutine so request handling never waits on Redis.
type Dispatcher struct {
	queue   Queue
	alertTo string
	timeout time.Duration
	now     func() time.Time
	wg      sync.WaitGroup
}

var (
	_ service.GraphMirror   = (*Dispatcher)(nil)
	_ service.StockNotifier = (*Dispatcher)(nil)
)

// NewDispatcher creates a Dispatcher. An empty alertTo disables low-stock mail.
func NewDispatcher(queue Queue, alertTo string) *Dispatcher {
	return &Dispatcher{queue: queue, alertTo: alertTo, timeout: enqueueTimeout, now: time.Now}
}

// version stamps item jobs at notification time, after the write committed.
func (d *Dispatcher) version() int64 { return d.now().UnixNano() }

func (d *Dispatcher) OnStoreUpserted(_ context.Context, id uuid.UUID, name, location string) {
	d.enqueueAsync(QueueGraphMirror, JobStoreUpserted, infra.StoreNode{
		ID: id.String(), Name: name, Location: location,
	})
}

func (d *Dispatcher) OnItemUpserted(_ context.Context, id uuid.UUID, name, typeName string, price decimal.Decimal, storeID uuid.UUID) {
	d.enqueueAsync(QueueGraphMirror, JobItemUpserted, infra.ItemNode{
		ID: id.String(), Name: name, TypeName: typeName, Price: price, StoreID: storeID.String(),
		Version: d.version(),
	})
}

func (d *Dispatcher) OnItemDeleted(_ context.Context, id uuid.UUID) {
	d.enqueueAsync(QueueGraphMirror, JobItemDeleted, ItemRef{ID: id.String(), Version: d.version()})
}

func (d *Dispatcher) NotifyLowStock(_ context.Context, alert service.LowStockAlert) {
	if d.alertTo == "" {
		return
	}
	d.enqueueAsync(QueueEmail, JobLowStockEmail, lowStockEmail(d.alertTo, alert))
}

// Wait blocks until in-flight enqueues have finished.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Enqueue pushes job onto queue.
func (d *Dispatcher) Enqueue(ctx context.Context, queue string, job Job) error {
	data, err := job.Encode()
	if err != nil {
		return err
	}
	return d.queue.Push(ctx, queue, data)
}

// enqueueAsync detaches from the request context: the write has committed
// and the notification must outlive the request.
func (d *Dispatcher) enqueueAsync(queue, jobType string, payload any) {
	job, err := NewJob(jobType, payload)
	if err != nil {
		log.Warn().Err(err).Str("type", jobType).Msg("dispatcher: dropping job")
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.Enqueue(ctx, queue, job); err != nil {
			jobsTotal.WithLabelValues(jobType, "enqueue_failed").Inc()
			log.Warn().Err(err).Str("queue", queue).Str("type", jobType).Msg("dispatcher: enqueue failed")
			return
		}
		jobsTotal.WithLabelValues(jobType, "enqueued").Inc()
	}()
}

// ── Pool ───────────────────────────────────────────────────────────────────

// JobHandler processes one job. Returning an error schedules a retry.
type JobHandler interface {
	Handle(ctx context.Context, job Job) error
}

type JobHandlerFunc func(ctx context.Context, job Job) error

func (f JobHandlerFunc) Handle(ctx context.Context, job Job) error { return f(ctx, job) }

// Pool consumes queues with a fixed number of goroutines.
type Pool struct {
	queue       Queue
	queues      []string
	handlers    map[string]JobHandler
	maxAttempts int
	backoff     time.Duration
	wg          sync.WaitGroup
}

// NewPool creates a pool; jobs failing maxAttempts times go to the DLQ.
func NewPool(queue Queue, maxAttempts int) *Pool {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Pool{
		queue:       queue,
		handlers:    make(map[string]JobHandler),
		maxAttempts: maxAttempts,
		backoff:     500 * time.Millisecond,
	}
}

// Register routes jobType on queue to h.
func (p *Pool) Register(queue, jobType string, h JobHandler) {
	p.handlers[jobType] = h
	for _, q := range p.queues {
		if q == queue {
			return
		}
	}
	p.queues = append(p.queues, queue)
}

// Start launches numWorkers goroutines. Register must not be called afterwards.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	if len(p.queues) == 0 {
		log.Info().Msg("worker pool: no handlers registered, not starting")
		return
	}
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	log.Info().Int("workers", numWorkers).Strs("queues", p.queues).Msg("worker pool started")
}

// Wait blocks until all workers have returned.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		}
		queue, raw, err := p.queue.Pop(ctx, popTimeout, p.queues...)
		if err != nil {
			if !errors.Is(err, ErrEmpty) && ctx.Err() == nil {
				log.Warn().Err(err).Int("worker", id).Msg("worker: pop failed")
				sleep(ctx, time.Second)
			}
			continue
		}
		p.process(ctx, queue, raw)
	}
}

func (p *Pool) process(ctx context.Context, queue string, raw []byte) {
	job, err := DecodeJob(raw)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("worker: unreadable job")
		quoted, _ := json.Marshal(string(raw))
		SendToDLQ(ctx, p.queue, queue, Job{Type: "unknown", Payload: quoted}, err.Error())
		return
	}
	h, ok := p.handlers[job.Type]
	if !ok {
		SendToDLQ(ctx, p.queue, queue, job, "no handler for job type")
		jobsTotal.WithLabelValues(job.Type, "dead_lettered").Inc()
		return
	}

	err = h.Handle(ctx, job)
	if err == nil {
		jobsTotal.WithLabelValues(job.Type, "succeeded").Inc()
		log.Debug().Str("type", job.Type).Int("attempts", job.Attempts+1).Msg("worker: job done")
		return
	}

	job.Attempts++
	if errors.Is(err, ErrInvalidPayload) || job.Attempts >= p.maxAttempts {
		SendToDLQ(ctx, p.queue, queue, job, err.Error())
		jobsTotal.WithLabelValues(job.Type, "dead_lettered").Inc()
		return
	}

	log.Warn().Err(err).Str("type", job.Type).Int("attempts", job.Attempts).Msg("worker: job failed, retrying")
	jobsTotal.WithLabelValues(job.Type, "retried").Inc()
	sleep(ctx, p.backoff*time.Duration(job.Attempts))
	data, encErr := job.Encode()
	if encErr == nil {
		encErr = p.queue.Push(context.WithoutCancel(ctx), queue, data)
	}
	if encErr != nil {
		log.Error().Err(encErr).Str("type", job.Type).Msg("worker: requeue failed")
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
