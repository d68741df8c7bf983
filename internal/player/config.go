package player

import (
	"time"

	"github.com/lanikai/topos/internal/media"
)

const (
	// DefaultQueueCapacity bounds how many coded packets may be buffered
	// between the demuxer and the decoders.
	DefaultQueueCapacity = 64

	// DefaultPollInterval is how long the concurrent consumer waits for a
	// packet before checking for an interrupt again.
	DefaultPollInterval = 10 * time.Millisecond
)

// Sink is the presentation side of the player.
type Sink interface {
	// Present displays a decoded frame. The frame is only valid for the
	// duration of the call.
	Present(frame *media.Frame) error

	// PollInterrupt reports whether the user asked to quit.
	PollInterrupt() bool

	Close() error
}

type Config struct {
	// Path to the media container.
	Input string

	// Fixed capacity of the packet queue. Defaults to DefaultQueueCapacity.
	QueueCapacity int

	// Demux on a separate goroutine, decoding and presenting on the goroutine
	// that calls Run.
	Concurrent bool

	// Concurrent mode only. Defaults to DefaultPollInterval.
	PollInterval time.Duration

	// Adapters. OpenDemuxer defaults to media.OpenContainer and OpenDecoder
	// to media.OpenDecoder; CreateSink is required.
	OpenDemuxer func(path string) (media.Demuxer, error)
	OpenDecoder func(stream media.StreamInfo) (media.Decoder, error)
	CreateSink  func(width, height int) (Sink, error)
}

func (c *Config) setDefaults() {
	if c.QueueCapacity == 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.OpenDemuxer == nil {
		c.OpenDemuxer = openContainer
	}
	if c.OpenDecoder == nil {
		c.OpenDecoder = media.OpenDecoder
	}
}

func openContainer(path string) (media.Demuxer, error) {
	c, err := media.OpenContainer(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}
