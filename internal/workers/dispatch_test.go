package workers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

type fakeDispatcher struct {
	mu     sync.Mutex
	got    []domain.HazardEvent
	notify chan struct{}
	block  chan struct{}
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{notify: make(chan struct{}, 64)}
}

func (f *fakeDispatcher) Dispatch(_ context.Context, ev domain.HazardEvent) domain.DispatchOutcome {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.got = append(f.got, ev)
	f.mu.Unlock()
	f.notify <- struct{}{}
	return domain.DispatchOutcome{ReportID: ev.ReportID, BroadcastOK: true}
}

func (f *fakeDispatcher) dispatched() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchWorker_ProcessesEnqueuedEvents(t *testing.T) {
	t.Parallel()

	fd := newFakeDispatcher()
	w := NewDispatchWorker(fd, 2, 10, time.Second, testLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := 0; i < 3; i++ {
		assert.True(t, w.Enqueue(domain.HazardEvent{ReportID: uuid.New()}))
	}

	for i := 0; i < 3; i++ {
		select {
		case <-fd.notify:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for dispatch")
		}
	}
	assert.Equal(t, 3, fd.dispatched())
}

func TestDispatchWorker_FullQueueDropsWithoutBlocking(t *testing.T) {
	t.Parallel()

	fd := newFakeDispatcher()
	fd.block = make(chan struct{})
	w := NewDispatchWorker(fd, 1, 1, time.Second, testLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// First event occupies the single worker, second fills the queue,
	// third must be dropped immediately.
	assert.True(t, w.Enqueue(domain.HazardEvent{ReportID: uuid.New()}))

	deadline := time.After(2 * time.Second)
	for {
		if w.Enqueue(domain.HazardEvent{ReportID: uuid.New()}) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("queue never accepted the second event")
		case <-time.After(5 * time.Millisecond):
		}
	}

	done := make(chan bool, 1)
	go func() { done <- w.Enqueue(domain.HazardEvent{ReportID: uuid.New()}) }()

	select {
	case accepted := <-done:
		assert.False(t, accepted, "full queue must drop, not block")
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(fd.block)
}

func TestDispatchWorker_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	fd := newFakeDispatcher()
	w := NewDispatchWorker(fd, 2, 10, time.Second, testLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
