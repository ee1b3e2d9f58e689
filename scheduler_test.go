package marquee

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualSchedulerFiresOncePerStep(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	s.Schedule(func() { count++ })

	if count != 0 {
		t.Fatal("callback fired before Step")
	}
	s.Step()
	if count != 1 {
		t.Fatalf("count = %d after one step, want 1", count)
	}
	s.Step()
	if count != 1 {
		t.Fatalf("count = %d after second step, want 1 (schedule-once)", count)
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	req := s.Schedule(func() { fired = true })
	s.Cancel(req)
	s.Step()
	if fired {
		t.Error("canceled callback fired")
	}
	// Canceling again, or canceling nonsense, is a no-op.
	s.Cancel(req)
	s.Cancel(FrameRequest(9999))
}

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var order []int
	s.Schedule(func() { order = append(order, 1) })
	s.Schedule(func() { order = append(order, 2) })
	s.Schedule(func() { order = append(order, 3) })
	s.Step()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("fire order = %v, want [1 2 3]", order)
	}
}

func TestManualSchedulerSelfReschedulingAdvancesOneFramePerStep(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var frame func()
	frame = func() {
		s.Schedule(frame)
		count++
	}
	s.Schedule(frame)

	s.StepN(5)
	if count != 5 {
		t.Errorf("count = %d after 5 steps, want 5", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want exactly one logical frame", s.Pending())
	}
}

func TestTickerSchedulerFires(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)
	defer s.Close()

	done := make(chan struct{})
	s.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestTickerSchedulerCancel(t *testing.T) {
	s := NewTickerScheduler(5 * time.Millisecond)
	defer s.Close()

	var fired atomic.Bool
	req := s.Schedule(func() { fired.Store(true) })
	s.Cancel(req)

	time.Sleep(50 * time.Millisecond)
	if fired.Load() {
		t.Error("canceled callback fired")
	}
}

func TestTickerSchedulerCloseIdempotent(t *testing.T) {
	s := NewTickerScheduler(time.Millisecond)
	s.Close()
	s.Close()
}

func TestTickerSchedulerDefaultInterval(t *testing.T) {
	s := NewTickerScheduler(0)
	defer s.Close()

	done := make(chan struct{})
	s.Schedule(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("default-interval scheduler did not fire")
	}
}
