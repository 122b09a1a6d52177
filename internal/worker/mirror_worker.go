package worker

import (
	"context"
	"fmt"

	"groceryhub/internal/infra"

	"github.com/rs/zerolog/log"
)

// ItemRef identifies an item whose graph node should be removed.
type ItemRef struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// GraphSink is the write side of the graph store.
type GraphSink interface {
	UpsertStore(ctx context.Context, s infra.StoreNode) error
	UpsertItem(ctx context.Context, i infra.ItemNode) error
	DeleteItem(ctx context.Context, id string, version int64) error
}

// MirrorWorker applies graph mirror jobs to the sink behind a circuit breaker.
type MirrorWorker struct {
	sink GraphSink
	cb   *infra.Breaker
}

func NewMirrorWorker(sink GraphSink, cb *infra.Breaker) *MirrorWorker {
	return &MirrorWorker{sink: sink, cb: cb}
}

// Register routes every mirror job type on p to w.
func (w *MirrorWorker) Register(p *Pool) {
	for _, t := range []string{JobStoreUpserted, JobItemUpserted, JobItemDeleted} {
		p.Register(QueueGraphMirror, t, w)
	}
}

// Handle decodes before calling the sink so bad payloads never count
// against the breaker.
func (w *MirrorWorker) Handle(ctx context.Context, job Job) error {
	var call func() error
	switch job.Type {
	case JobStoreUpserted:
		var s infra.StoreNode
		if err := decodePayload(job, &s); err != nil {
			return err
		}
		call = func() error { return w.sink.UpsertStore(ctx, s) }
	case JobItemUpserted:
		var i infra.ItemNode
		if err := decodePayload(job, &i); err != nil {
			return err
		}
		call = func() error { return w.sink.UpsertItem(ctx, i) }
	case JobItemDeleted:
		var ref ItemRef
		if err := decodePayload(job, &ref); err != nil {
			return err
		}
		call = func() error { return w.sink.DeleteItem(ctx, ref.ID, ref.Version) }
	default:
		return fmt.Errorf("%w: unexpected mirror job %q", ErrInvalidPayload, job.Type)
	}

	if err := w.cb.Call(call); err != nil {
		log.Warn().Err(err).Str("type", job.Type).Int("attempt", job.Attempts+1).Msg("mirror_worker: sync failed")
		return err
	}
	return nil
}
