package player

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// runConcurrent demuxes on a producer goroutine into the shared SyncQueue,
// while the calling goroutine decodes and presents. The consumer stays on the
// caller's goroutine because presentation libraries such as SDL must be
// driven from the main OS thread.
func (p *Player) runConcurrent(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.produce(gctx)
	})

	p.consume(ctx)

	// Wake the producer if it is waiting on a full queue.
	cancel()
	if err := g.Wait(); err != nil {
		log.Warn("Producer: %v", err)
	}
}

func (p *Player) produce(ctx context.Context) error {
	defer p.syncQueue.CloseInput()

	for !p.interrupted.Load() && ctx.Err() == nil {
		pkt, err := p.demuxer.ReadPacket()
		if err != nil {
			p.endOfInput(err)
			return nil
		}
		p.stats.packetsRead.Add(1)

		if err := p.syncQueue.Put(ctx, pkt); err != nil {
			// Interrupted while waiting for space.
			pkt.Release()
			p.stats.discarded.Add(1)
			return nil
		}
	}
	return nil
}

func (p *Player) consume(ctx context.Context) {
	for !p.checkInterrupt(ctx) {
		wait, cancel := context.WithTimeout(ctx, p.cfg.PollInterval)
		pkt, err := p.syncQueue.Get(wait)
		cancel()

		switch {
		case err == nil:
			p.route(pkt)
		case errors.Is(err, context.DeadlineExceeded):
			// Nothing buffered yet; poll for an interrupt and wait again.
		case err == io.EOF:
			// Input ended and everything buffered has been presented.
			return
		default:
			return
		}
	}
}
