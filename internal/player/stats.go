package player

import (
	"fmt"
	"sync/atomic"
)

// Stats counts what happened during playback.
type Stats struct {
	PacketsRead     int64
	VideoPackets    int64
	AudioPackets    int64 // demuxed, never presented
	OtherPackets    int64
	FramesPresented int64
	DecodeErrors    int64
	PresentErrors   int64
	Stalls          int64 // times the demuxer waited on a full queue
	Discarded       int64 // resident packets released without decoding
}

func (s Stats) String() string {
	return fmt.Sprintf("read=%d video=%d audio=%d other=%d presented=%d decode_errors=%d present_errors=%d stalls=%d discarded=%d",
		s.PacketsRead, s.VideoPackets, s.AudioPackets, s.OtherPackets,
		s.FramesPresented, s.DecodeErrors, s.PresentErrors, s.Stalls, s.Discarded)
}

type counters struct {
	packetsRead     atomic.Int64
	videoPackets    atomic.Int64
	audioPackets    atomic.Int64
	otherPackets    atomic.Int64
	framesPresented atomic.Int64
	decodeErrors    atomic.Int64
	presentErrors   atomic.Int64
	stalls          atomic.Int64
	discarded       atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		PacketsRead:     c.packetsRead.Load(),
		VideoPackets:    c.videoPackets.Load(),
		AudioPackets:    c.audioPackets.Load(),
		OtherPackets:    c.otherPackets.Load(),
		FramesPresented: c.framesPresented.Load(),
		DecodeErrors:    c.decodeErrors.Load(),
		PresentErrors:   c.presentErrors.Load(),
		Stalls:          c.stalls.Load(),
		Discarded:       c.discarded.Load(),
	}
}
