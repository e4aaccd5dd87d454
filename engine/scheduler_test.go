package engine

import "testing"

// TestLoopSchedulerSinglePending verifies a new request replaces the old one
func TestLoopSchedulerSinglePending(t *testing.T) {
	s := NewLoopScheduler()
	var ran []int

	first := s.RequestFrame(func() { ran = append(ran, 1) })
	s.RequestFrame(func() { ran = append(ran, 2) })

	// Cancelling the replaced id must not drop the live one
	s.CancelFrame(first)
	if !s.RunFrame() {
		t.Fatal("Expected pending frame")
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("Expected only the second callback, got %v", ran)
	}
	if s.RunFrame() {
		t.Error("Expected no frame after run")
	}
}

// TestLoopSchedulerCancel verifies cancellation of the live frame
func TestLoopSchedulerCancel(t *testing.T) {
	s := NewLoopScheduler()
	id := s.RequestFrame(func() { t.Error("Expected cancelled callback not to run") })
	s.CancelFrame(id)
	if s.Pending() || s.RunFrame() {
		t.Error("Expected nothing pending")
	}
}

// TestLoopSchedulerReRequest verifies a callback can schedule the next frame
func TestLoopSchedulerReRequest(t *testing.T) {
	s := NewLoopScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			s.RequestFrame(tick)
		}
	}
	s.RequestFrame(tick)
	for s.RunFrame() {
	}
	if count != 3 {
		t.Errorf("Expected 3 frames, got %d", count)
	}
}
