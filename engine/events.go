package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/token-bubbles/parameter"
)

// SelectionEvent is emitted once per classified click
type SelectionEvent struct {
	EntityID  string
	Frame     int64     // Frame counter at emission
	Timestamp time.Time // Clock time at emission
}

const queueCapacity = parameter.SelectionQueueSize

// EventQueue is a lock-free ring buffer of selection events
// Push is safe from any goroutine, Consume is meant for the single loop goroutine
// When full, the oldest events are overwritten
type EventQueue struct {
	events [queueCapacity]SelectionEvent
	head   atomic.Uint64 // Next position to read
	tail   atomic.Uint64 // Next position to write
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, claiming a slot via CAS
func (eq *EventQueue) Push(event SelectionEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail%queueCapacity] = event

			// Overwrite: keep head within capacity of tail
			currentHead := eq.head.Load()
			if nextTail-currentHead > queueCapacity {
				eq.head.CompareAndSwap(currentHead, nextTail-queueCapacity)
			}
			return
		}
	}
}

// Consume returns pending events oldest first and marks them consumed
func (eq *EventQueue) Consume() []SelectionEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	result := eq.snapshot(currentHead, currentTail)
	if result == nil {
		return nil
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []SelectionEvent {
	return eq.snapshot(eq.head.Load(), eq.tail.Load())
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > queueCapacity {
		return queueCapacity
	}
	return int(available)
}

func (eq *EventQueue) snapshot(head, tail uint64) []SelectionEvent {
	available := tail - head
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		head = tail - queueCapacity
	}

	result := make([]SelectionEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(head+i)%queueCapacity]
	}
	return result
}
