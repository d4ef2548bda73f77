package events

import (
	"sync/atomic"

	"github.com/lixenwraith/super-goalie/parameter"
)

// Emitter accepts events for later dispatch
type Emitter interface {
	Push(event GameEvent)
}

type slot struct {
	ev    GameEvent
	ready atomic.Bool // set once ev is fully written, cleared on read
}

// EventQueue is a fixed ring of pending simulation events
// Any goroutine may Push (terminal input, the step itself); only the step consumes
// A full ring overwrites its oldest unread event and counts it in Dropped
type EventQueue struct {
	ring    [parameter.EventQueueSize]slot
	head    atomic.Uint64 // next unread
	tail    atomic.Uint64 // next write
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slotIndex(seq uint64) uint64 { return seq & parameter.EventBufferMask }

// Push claims the next sequence number and publishes the event into its slot
func (eq *EventQueue) Push(event GameEvent) {
	seq := eq.tail.Add(1) - 1
	s := &eq.ring[slotIndex(seq)]
	s.ev = event
	s.ready.Store(true)

	// Slide head past the overwritten event when the ring has lapped the reader
	head := eq.head.Load()
	if oldest := seq + 1 - parameter.EventQueueSize; seq >= parameter.EventQueueSize && head < oldest {
		if eq.head.CompareAndSwap(head, oldest) {
			eq.dropped.Add(oldest - head)
		}
	}
}

// Emit pushes an event stamped with a step index
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Len is the number of unread events, at most the ring size
func (eq *EventQueue) Len() int {
	return int(min(eq.tail.Load()-eq.head.Load(), parameter.EventQueueSize))
}

// Dropped is the running count of events overwritten before they were consumed
func (eq *EventQueue) Dropped() uint64 { return eq.dropped.Load() }

// Consume takes every published event in push order
// Stops early at a slot whose writer has not finished; the rest is read next time
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head, tail := eq.head.Load(), eq.tail.Load()
		if head == tail {
			return nil
		}

		start := head
		if tail-head > parameter.EventQueueSize {
			start = tail - parameter.EventQueueSize
		}

		var out []GameEvent
		for seq := start; seq < tail; seq++ {
			s := &eq.ring[slotIndex(seq)]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		if eq.head.CompareAndSwap(head, start+uint64(len(out))) {
			eq.dropped.Add(start - head)
			return out
		}
	}
}
