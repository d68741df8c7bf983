//////////////////////////////////////////////////////////////////////////////
//
// Coded packets, as produced by a demuxer
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package packet

import (
	"fmt"
	"time"
)

// Packet is a compressed, not yet decoded unit of stream data. It is
// immutable once produced. Whoever currently owns the packet (producer, queue,
// then consumer) is responsible for calling Release exactly once.
type Packet struct {
	// Index of the container stream this packet belongs to.
	StreamIndex int

	// Presentation and decoding timestamps, relative to the stream start.
	PTS time.Duration
	DTS time.Duration

	KeyFrame bool

	payload *SharedBuffer
}

// New wraps data in a packet for the given stream. The optional done function
// is called once the packet has been released.
func New(streamIndex int, data []byte, done func()) *Packet {
	return &Packet{
		StreamIndex: streamIndex,
		payload:     NewSharedBuffer(data, 1, done),
	}
}

// Data returns the compressed payload. It must not be used after Release.
func (p *Packet) Data() []byte {
	return p.payload.Bytes()
}

// Len returns the payload size in bytes.
func (p *Packet) Len() int {
	return len(p.payload.Bytes())
}

// Release gives up ownership of the payload.
func (p *Packet) Release() {
	if p == nil {
		return
	}
	p.payload.Release()
}

// Released reports whether the payload has already been released.
func (p *Packet) Released() bool {
	return !p.payload.Held()
}

func (p *Packet) String() string {
	key := ""
	if p.KeyFrame {
		key = " key"
	}
	return fmt.Sprintf("packet[stream=%d pts=%v dts=%v size=%d%s]",
		p.StreamIndex, p.PTS, p.DTS, p.Len(), key)
}
