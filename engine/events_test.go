package engine

import (
	"sync"
	"testing"
)

func TestEventQueuePushConsume(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(SelectionEvent{EntityID: "a", Frame: 1})
	eq.Push(SelectionEvent{EntityID: "b", Frame: 2})

	if eq.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", eq.Len())
	}
	if peek := eq.Peek(); len(peek) != 2 || eq.Len() != 2 {
		t.Errorf("Expected peek to leave events, got %d pending", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 2 || events[0].EntityID != "a" || events[1].EntityID != "b" {
		t.Errorf("Expected [a b] in order, got %v", events)
	}
	if eq.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	for i := 0; i < queueCapacity+10; i++ {
		eq.Push(SelectionEvent{Frame: int64(i)})
	}

	events := eq.Consume()
	if len(events) != queueCapacity {
		t.Fatalf("Expected %d events, got %d", queueCapacity, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	eq := NewEventQueue()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				eq.Push(SelectionEvent{EntityID: "x"})
			}
		}()
	}
	wg.Wait()

	if eq.Len() != 40 {
		t.Errorf("Expected 40 events, got %d", eq.Len())
	}
}
