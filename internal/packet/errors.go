package packet

import (
	errors "golang.org/x/xerrors"
)

var (
	// ErrInvalidCapacity is returned when a queue is created with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("packet queue: capacity must be positive")

	// ErrQueueFull signals that the producer must apply backpressure.
	ErrQueueFull = errors.New("packet queue: full")

	// ErrQueueEmpty signals that no work is available right now.
	ErrQueueEmpty = errors.New("packet queue: empty")

	ErrQueueClosed = errors.New("packet queue: closed")
	ErrNilPacket   = errors.New("packet queue: nil packet")
)
