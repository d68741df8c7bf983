//////////////////////////////////////////////////////////////////////////////
//
// Playback loop: demuxer -> packet queue -> decoder -> sink
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

// Package player drives playback of a single media file.
package player

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/logging"
	"github.com/lanikai/topos/internal/media"
	"github.com/lanikai/topos/internal/packet"
)

var log = logging.DefaultLogger.WithTag("player")

// Player plays the first video stream of a container. The first audio stream
// is demuxed and its decoder opened, but audio is never routed to an output.
type Player struct {
	cfg Config

	demuxer  media.Demuxer
	video    media.StreamInfo
	audio    media.StreamInfo
	videoDec media.Decoder
	audioDec media.Decoder
	sink     Sink

	// Exactly one of these is used, depending on cfg.Concurrent.
	queue     *packet.Queue
	syncQueue *packet.SyncQueue

	state       atomicState
	interrupted atomic.Bool
	stats       counters
}

// Open prepares playback of cfg.Input: it opens the container, selects the
// first video and audio streams, opens their decoders, and creates the sink
// at the video size. Initialization failures are returned as *InitError.
func Open(cfg Config) (*Player, error) {
	cfg.setDefaults()
	p := &Player{cfg: cfg}

	var err error
	if cfg.Concurrent {
		p.syncQueue, err = packet.NewSyncQueue(cfg.QueueCapacity)
	} else {
		p.queue, err = packet.NewQueue(cfg.QueueCapacity)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "queue capacity %d", cfg.QueueCapacity)
	}

	if err := p.init(); err != nil {
		p.closeAdapters()
		return nil, err
	}
	return p, nil
}

func (p *Player) init() error {
	var err error

	if p.demuxer, err = p.cfg.OpenDemuxer(p.cfg.Input); err != nil {
		return &InitError{StageOpenInput, err}
	}

	streams, err := p.demuxer.Streams()
	if err != nil {
		return &InitError{StageFindStreamInfo, err}
	}

	if p.video, p.audio, err = media.SelectStreams(streams); err != nil {
		return &InitError{StageFindStreams, err}
	}
	log.Info("Playing video stream %v, audio stream %v", p.video, p.audio)

	if p.videoDec, err = p.openDecoder(p.video); err != nil {
		return err
	}
	if p.audioDec, err = p.openDecoder(p.audio); err != nil {
		return err
	}

	if p.cfg.CreateSink == nil {
		return &InitError{StageCreateSurface, errors.New("no sink configured")}
	}
	if p.sink, err = p.cfg.CreateSink(p.video.Width, p.video.Height); err != nil {
		return &InitError{StageCreateSurface, err}
	}

	return nil
}

func (p *Player) openDecoder(stream media.StreamInfo) (media.Decoder, error) {
	dec, err := p.cfg.OpenDecoder(stream)
	if err != nil {
		if errors.Is(err, media.ErrDecoderNotFound) {
			return nil, &InitError{StageFindDecoder, err}
		}
		return nil, &InitError{StageOpenDecoder, err}
	}
	return dec, nil
}

// VideoStream returns the stream being presented.
func (p *Player) VideoStream() media.StreamInfo {
	return p.video
}

func (p *Player) State() State {
	return p.state.load()
}

func (p *Player) Stats() Stats {
	return p.stats.snapshot()
}

// Stop interrupts playback. It may be called from any goroutine; Run notices
// at the top of its next iteration.
func (p *Player) Stop() {
	p.interrupt("stop requested")
}

// Run plays until the input ends or playback is interrupted (context
// cancelled, Stop called, or the sink reports a quit). Per-packet failures are
// counted and skipped, never returned. All resources are released before Run
// returns.
func (p *Player) Run(ctx context.Context) error {
	if !p.state.advance(Running) {
		return errors.Errorf("player is %v", p.State())
	}

	if p.cfg.Concurrent {
		p.runConcurrent(ctx)
	} else {
		p.runSequential(ctx)
	}

	p.teardown()
	p.state.advance(Stopped)
	log.Info("Playback stopped: %v", p.Stats())
	return nil
}

// Each iteration admits one packet into the queue and routes the oldest one.
func (p *Player) runSequential(ctx context.Context) {
	for p.State() == Running {
		if p.checkInterrupt(ctx) {
			break
		}

		pkt, err := p.demuxer.ReadPacket()
		if err != nil {
			p.endOfInput(err)
			break
		}
		p.stats.packetsRead.Add(1)

		if err := p.admit(pkt); err != nil {
			log.Warn("Dropping %v: %v", pkt, err)
			pkt.Release()
		}

		p.step()
	}

	// Decode whatever is still buffered, unless interrupted.
	p.state.advance(Draining)
	for !p.queue.IsEmpty() && !p.checkInterrupt(ctx) {
		p.step()
	}
}

// admit enqueues pkt. While the queue is full, the oldest packet is decoded to
// make room: the demuxer waits, nothing is dropped.
func (p *Player) admit(pkt *packet.Packet) error {
	for {
		err := p.queue.Enqueue(pkt)
		if !errors.Is(err, packet.ErrQueueFull) {
			return err
		}
		p.stats.stalls.Add(1)
		if !p.step() {
			return err
		}
	}
}

// step routes the oldest queued packet. It returns false if there was none.
func (p *Player) step() bool {
	pkt, err := p.queue.Dequeue()
	if err != nil {
		return false
	}
	p.route(pkt)
	return true
}

// route consumes pkt: video goes through the decoder to the sink, everything
// else is released unrouted.
func (p *Player) route(pkt *packet.Packet) {
	defer pkt.Release()

	switch pkt.StreamIndex {
	case p.video.Index:
		p.stats.videoPackets.Add(1)

		frame, err := p.videoDec.Decode(pkt)
		if err != nil {
			p.stats.decodeErrors.Add(1)
			log.Debug("Skipping %v: %v", pkt, err)
			return
		}
		if frame == nil {
			return
		}
		defer frame.Release()

		if err := p.sink.Present(frame); err != nil {
			p.stats.presentErrors.Add(1)
			log.Warn("Present failed: %v", err)
			return
		}
		p.stats.framesPresented.Add(1)

	case p.audio.Index:
		// TODO: Route to an audio sink once audio output exists.
		p.stats.audioPackets.Add(1)

	default:
		p.stats.otherPackets.Add(1)
	}
}

// checkInterrupt is called at the top of every loop iteration. Only the
// goroutine that owns the sink may call it.
func (p *Player) checkInterrupt(ctx context.Context) bool {
	if p.interrupted.Load() {
		return true
	}

	select {
	case <-ctx.Done():
		p.interrupt(ctx.Err().Error())
		return true
	default:
	}

	if p.sink.PollInterrupt() {
		p.interrupt("quit requested")
		return true
	}
	return false
}

func (p *Player) interrupt(reason string) {
	if p.interrupted.CompareAndSwap(false, true) {
		log.Info("Interrupted: %s", reason)
	}
	// Before Run the player stays in Starting; Run sees the flag at once.
	p.state.transition(Running, Draining)
}

func (p *Player) endOfInput(err error) {
	if err == io.EOF {
		log.Info("End of input")
	} else {
		log.Warn("Ending playback after read failure: %v", err)
	}
	p.state.transition(Running, Draining)
}

// teardown releases packets still resident in the queue, then the adapters.
func (p *Player) teardown() {
	var n int
	if p.queue != nil {
		n = p.queue.Close()
	} else {
		p.stats.stalls.Store(p.syncQueue.Stalls())
		n = p.syncQueue.Close()
	}
	if n > 0 {
		log.Debug("Released %d queued packets", n)
	}
	p.stats.discarded.Add(int64(n))

	p.closeAdapters()
}

func (p *Player) closeAdapters() {
	closers := []struct {
		name string
		c    io.Closer
	}{
		{"sink", p.sink},
		{"audio decoder", p.audioDec},
		{"video decoder", p.videoDec},
		{"demuxer", p.demuxer},
	}
	for _, e := range closers {
		if e.c == nil {
			continue
		}
		if err := e.c.Close(); err != nil {
			log.Warn("Closing %s: %v", e.name, err)
		}
	}
}
