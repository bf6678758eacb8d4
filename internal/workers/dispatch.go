package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pankajyadav-dev/ocean/internal/domain"
	"github.com/pankajyadav-dev/ocean/internal/observability"
)

// HazardDispatcher runs one notification fan-out pass.
type HazardDispatcher interface {
	Dispatch(ctx context.Context, ev domain.HazardEvent) domain.DispatchOutcome
}

// DispatchWorker is the fire-and-forget boundary between report ingestion
// and the notification pipeline: ingestion enqueues and returns, a small
// pool drains the queue. A full queue drops the event rather than blocking
// the HTTP response.
type DispatchWorker struct {
	dispatcher HazardDispatcher
	jobs       chan domain.HazardEvent
	poolSize   int
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewDispatchWorker(dispatcher HazardDispatcher, poolSize, queueSize int, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *DispatchWorker {
	if poolSize < 1 {
		poolSize = 1
	}
	if queueSize < 1 {
		queueSize = 100
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DispatchWorker{
		dispatcher: dispatcher,
		jobs:       make(chan domain.HazardEvent, queueSize),
		poolSize:   poolSize,
		timeout:    timeout,
		logger:     logger,
		metrics:    metrics,
	}
}

// Enqueue hands an event to the pool without blocking. Returns false when
// the queue is full; the report itself is already persisted, so the event
// is dropped and logged, never retried.
func (w *DispatchWorker) Enqueue(ev domain.HazardEvent) bool {
	select {
	case w.jobs <- ev:
		return true
	default:
		w.logger.Error("dispatch queue full, dropping event",
			slog.String("report_id", ev.ReportID.String()),
		)
		w.metrics.IncQueueDrop()
		return false
	}
}

func (w *DispatchWorker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}

	wg.Wait()
}

func (w *DispatchWorker) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-w.jobs:
			w.process(ev)
		}
	}
}

func (w *DispatchWorker) process(ev domain.HazardEvent) {
	// Detached from any request context: the HTTP response has long been
	// committed by the time this runs.
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	outcome := w.dispatcher.Dispatch(ctx, ev)
	if !outcome.OK() {
		w.logger.Warn("dispatch completed with failures",
			slog.String("report_id", ev.ReportID.String()),
			slog.Int("email_failed", outcome.EmailFailed),
			slog.Int("sms_failed", outcome.SMSFailed),
			slog.Bool("broadcast_ok", outcome.BroadcastOK),
		)
	}
}
