package packet

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
)

// SyncQueue wraps a Queue for use by one producer goroutine and one or more
// consumer goroutines.
//
// When the queue is full, Put waits for space: packets are never dropped or
// overwritten. When it is empty, Get waits for a packet. Every wait also ends
// when the context is cancelled, so an interrupt is noticed by both sides.
type SyncQueue struct {
	mu sync.Mutex
	q  *Queue

	// Closed and replaced on every state change, waking all waiters.
	changed chan struct{}

	// Set by CloseInput once the producer has nothing more to add.
	inputDone bool

	stalls int64
}

func NewSyncQueue(capacity int) (*SyncQueue, error) {
	q, err := NewQueue(capacity)
	if err != nil {
		return nil, err
	}
	return &SyncQueue{
		q:       q,
		changed: make(chan struct{}),
	}, nil
}

// Must hold s.mu.
func (s *SyncQueue) broadcast() {
	close(s.changed)
	s.changed = make(chan struct{})
}

// Put appends pkt, waiting while the queue is full. On error the caller keeps
// ownership of pkt.
func (s *SyncQueue) Put(ctx context.Context, pkt *Packet) error {
	stalled := false

	s.mu.Lock()
	for {
		if s.inputDone {
			s.mu.Unlock()
			return ErrQueueClosed
		}

		err := s.q.Enqueue(pkt)
		if err != ErrQueueFull {
			if err == nil {
				s.broadcast()
			}
			s.mu.Unlock()
			return err
		}

		if !stalled {
			stalled = true
			atomic.AddInt64(&s.stalls, 1)
		}

		wait := s.changed
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}

		s.mu.Lock()
	}
}

// Get removes the oldest packet, waiting while the queue is empty. It returns
// io.EOF once CloseInput has been called and every packet has been taken.
func (s *SyncQueue) Get(ctx context.Context) (*Packet, error) {
	s.mu.Lock()
	for {
		pkt, err := s.q.Dequeue()
		switch err {
		case nil:
			s.broadcast()
			s.mu.Unlock()
			return pkt, nil
		case ErrQueueClosed:
			s.mu.Unlock()
			return nil, err
		}

		if s.inputDone {
			s.mu.Unlock()
			return nil, io.EOF
		}

		wait := s.changed
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		s.mu.Lock()
	}
}

// CloseInput marks the end of input. Further Puts fail; Gets drain what is
// left and then return io.EOF.
func (s *SyncQueue) CloseInput() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inputDone {
		s.inputDone = true
		s.broadcast()
	}
}

// Close releases all resident packets and wakes every waiter. It returns the
// number of packets released.
func (s *SyncQueue) Close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.q.Close()
	s.inputDone = true
	s.broadcast()
	return n
}

func (s *SyncQueue) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}

func (s *SyncQueue) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Cap()
}

// Stalls returns how many Puts had to wait for space.
func (s *SyncQueue) Stalls() int64 {
	return atomic.LoadInt64(&s.stalls)
}
