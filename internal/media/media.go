//////////////////////////////////////////////////////////////////////////////
//
// Streams, frames, and the demuxer/decoder contracts
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package media

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/nareix/joy4/av"

	"github.com/lanikai/topos/internal/logging"
	"github.com/lanikai/topos/internal/packet"
)

var log = logging.DefaultLogger.WithTag("media")

// Kind classifies an elementary stream.
type Kind int

const (
	Other Kind = iota
	Video
	Audio
)

func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return "other"
	}
}

// StreamInfo describes one elementary stream of a container.
type StreamInfo struct {
	Index int
	Kind  Kind

	// Codec name, e.g. "H264" or "AAC".
	Codec string

	// Video only.
	Width  int
	Height int

	// Audio only.
	SampleRate int
	Channels   int

	// Codec parameters needed to open a decoder for this stream.
	CodecData av.CodecData
}

func (s StreamInfo) String() string {
	switch s.Kind {
	case Video:
		return fmt.Sprintf("#%d %s %s %dx%d", s.Index, s.Kind, s.Codec, s.Width, s.Height)
	case Audio:
		return fmt.Sprintf("#%d %s %s %dHz/%dch", s.Index, s.Kind, s.Codec, s.SampleRate, s.Channels)
	default:
		return fmt.Sprintf("#%d %s %s", s.Index, s.Kind, s.Codec)
	}
}

// Demuxer splits a container into coded packets, each tagged with the index
// of its stream.
type Demuxer interface {
	io.Closer

	// Streams returns the elementary streams found in the container.
	Streams() ([]StreamInfo, error)

	// ReadPacket returns the next packet in container order, or io.EOF once
	// the input is exhausted. The caller owns the returned packet.
	ReadPacket() (*packet.Packet, error)
}

// Frame is a decoded picture in planar YUV 4:2:0 layout.
type Frame struct {
	Image *image.YCbCr
	PTS   time.Duration

	release func()
}

// NewFrame wraps img. The optional release function is called once by
// Release, returning the picture memory to the decoder.
func NewFrame(img *image.YCbCr, pts time.Duration, release func()) *Frame {
	return &Frame{Image: img, PTS: pts, release: release}
}

func (f *Frame) Width() int {
	return f.Image.Rect.Dx()
}

func (f *Frame) Height() int {
	return f.Image.Rect.Dy()
}

// Release hands the frame back to its decoder. The image must not be used
// afterwards.
func (f *Frame) Release() {
	if f == nil || f.release == nil {
		return
	}
	release := f.release
	f.release = nil
	release()
}
