package engine

// FrameID identifies one requested frame callback
type FrameID uint64

// FrameScheduler is the host's "run before next repaint" primitive
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// LoopScheduler holds at most one pending frame callback for a host loop
// The host calls RunFrame on each display tick, tests call it directly
// Not safe for concurrent use, it belongs to the loop goroutine
type LoopScheduler struct {
	next    FrameID
	pending FrameID
	fn      func()
}

// NewLoopScheduler creates an empty scheduler
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

// RequestFrame replaces any pending callback with fn
func (s *LoopScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending = s.next
	s.fn = fn
	return s.pending
}

// CancelFrame drops the pending callback if id still refers to it
func (s *LoopScheduler) CancelFrame(id FrameID) {
	if id != 0 && id == s.pending {
		s.pending = 0
		s.fn = nil
	}
}

// Pending reports whether a callback is waiting
func (s *LoopScheduler) Pending() bool {
	return s.fn != nil
}

// RunFrame runs and clears the pending callback, returns false when none was pending
// The callback may request the next frame
func (s *LoopScheduler) RunFrame() bool {
	fn := s.fn
	if fn == nil {
		return false
	}
	s.pending = 0
	s.fn = nil
	fn()
	return true
}
