package marquee

import (
	"sort"
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60 Hz visual refresh.
const DefaultFrameInterval = time.Second / 60

// FrameRequest identifies one scheduled frame callback. The zero value is
// never issued and can be used as "nothing scheduled".
type FrameRequest uint64

// FrameScheduler is the platform frame-scheduling primitive: a scheduled
// callback fires exactly once at the next frame boundary unless canceled
// first. Contract: schedule once, cancellable, regular visual-refresh
// cadence. Callbacks fire sequentially, never concurrently with each
// other, which is what keeps the engine's frame cycle cooperative.
type FrameScheduler interface {
	// Schedule registers fn to run at the next frame boundary.
	Schedule(fn func()) FrameRequest

	// Cancel revokes a pending request. Canceling an unknown or already
	// fired request is a no-op.
	Cancel(req FrameRequest)
}

// frameQueue holds pending callbacks keyed by request, shared by both
// scheduler implementations.
type frameQueue struct {
	mu      sync.Mutex
	nextID  FrameRequest
	pending map[FrameRequest]func()
}

func newFrameQueue() *frameQueue {
	return &frameQueue{pending: make(map[FrameRequest]func())}
}

func (q *frameQueue) add(fn func()) FrameRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.pending[q.nextID] = fn
	return q.nextID
}

func (q *frameQueue) remove(req FrameRequest) {
	q.mu.Lock()
	delete(q.pending, req)
	q.mu.Unlock()
}

// drain takes the current batch in request order, leaving the queue empty
// for the callbacks scheduled during the batch.
func (q *frameQueue) drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	ids := make([]FrameRequest, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	batch := make([]func(), len(ids))
	for i, id := range ids {
		batch[i] = q.pending[id]
		delete(q.pending, id)
	}
	return batch
}

// TickerScheduler fires frame callbacks at a fixed cadence on a single
// dispatch goroutine.
type TickerScheduler struct {
	queue     *frameQueue
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewTickerScheduler starts a scheduler firing every interval. A
// non-positive interval uses DefaultFrameInterval. Close releases the
// dispatch goroutine.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	s := &TickerScheduler{
		queue:  newFrameQueue(),
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TickerScheduler) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			for _, fn := range s.queue.drain() {
				fn()
			}
		}
	}
}

// Schedule implements FrameScheduler.
func (s *TickerScheduler) Schedule(fn func()) FrameRequest {
	return s.queue.add(fn)
}

// Cancel implements FrameScheduler.
func (s *TickerScheduler) Cancel(req FrameRequest) {
	s.queue.remove(req)
}

// Close stops the cadence and drops all pending requests. Safe to call
// multiple times.
func (s *TickerScheduler) Close() {
	s.closeOnce.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}

// ManualScheduler fires frames only when stepped, for tests and for hosts
// that drive their own loop (a TUI program's tick, for example).
type ManualScheduler struct {
	queue *frameQueue
}

// NewManualScheduler creates an idle scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{queue: newFrameQueue()}
}

// Schedule implements FrameScheduler.
func (s *ManualScheduler) Schedule(fn func()) FrameRequest {
	return s.queue.add(fn)
}

// Cancel implements FrameScheduler.
func (s *ManualScheduler) Cancel(req FrameRequest) {
	s.queue.remove(req)
}

// Step fires every callback pending at the time of the call, in request
// order. Callbacks scheduled during the step wait for the next one, so a
// self-rescheduling frame cycle advances exactly one frame per Step.
func (s *ManualScheduler) Step() {
	for _, fn := range s.queue.drain() {
		fn()
	}
}

// StepN steps n frames.
func (s *ManualScheduler) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Pending reports the number of outstanding frame requests.
func (s *ManualScheduler) Pending() int {
	s.queue.mu.Lock()
	defer s.queue.mu.Unlock()
	return len(s.queue.pending)
}
