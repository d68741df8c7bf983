//////////////////////////////////////////////////////////////////////////////
//
// Fixed-capacity circular queue of coded packets
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package packet

// Queue is a fixed-capacity FIFO of coded packets, backed by a ring of slots
// allocated up front. Occupancy is tracked with an explicit count, so an empty
// queue and a full queue are never confused.
//
//	capacity = 5, head = 3, count = 3
//
//	slots : q4 | #  | #  | q2 | q3
//	        ^tail      ^head
//
// A Queue is not safe for concurrent use; see SyncQueue.
type Queue struct {
	slots []*Packet
	head  int
	count int

	closed bool
}

// NewQueue returns an empty queue with exactly capacity slots.
func NewQueue(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Queue{slots: make([]*Packet, capacity)}, nil
}

// Enqueue appends pkt at the tail. Ownership of pkt passes to the queue.
//
// A full queue returns ErrQueueFull and is left untouched; the caller keeps
// ownership of pkt and must drain before retrying.
func (q *Queue) Enqueue(pkt *Packet) error {
	switch {
	case q.closed:
		return ErrQueueClosed
	case pkt == nil:
		return ErrNilPacket
	case q.count == len(q.slots):
		return ErrQueueFull
	}

	tail := (q.head + q.count) % len(q.slots)
	if q.slots[tail] != nil {
		panic("packet.Queue: tail slot still occupied")
	}
	q.slots[tail] = pkt
	q.count++
	return nil
}

// Dequeue removes and returns the oldest packet. Ownership passes to the
// caller. An empty queue returns ErrQueueEmpty and is left untouched.
func (q *Queue) Dequeue() (*Packet, error) {
	if q.count == 0 {
		if q.closed {
			return nil, ErrQueueClosed
		}
		return nil, ErrQueueEmpty
	}

	pkt := q.slots[q.head]
	q.slots[q.head] = nil
	q.count--
	if q.count == 0 {
		q.head = 0
	} else {
		q.head = (q.head + 1) % len(q.slots)
	}
	return pkt, nil
}

// Peek returns the oldest packet without removing it, or nil if the queue is
// empty. The queue keeps ownership.
func (q *Queue) Peek() *Packet {
	if q.count == 0 {
		return nil
	}
	return q.slots[q.head]
}

func (q *Queue) IsEmpty() bool {
	return q.count == 0
}

func (q *Queue) IsFull() bool {
	return q.count == len(q.slots)
}

// Len returns the number of resident packets.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the fixed capacity chosen at construction.
func (q *Queue) Cap() int {
	return len(q.slots)
}

// Close releases every resident packet exactly once and drops the storage.
// It returns the number of packets released. Calling Close more than once is
// harmless.
func (q *Queue) Close() int {
	if q.closed {
		return 0
	}
	n := q.count
	for i := 0; i < n; i++ {
		idx := (q.head + i) % len(q.slots)
		q.slots[idx].Release()
		q.slots[idx] = nil
	}
	q.slots = nil
	q.head = 0
	q.count = 0
	q.closed = true
	return n
}
