//////////////////////////////////////////////////////////////////////////////
//
// Container demuxing via joy4
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package media

import (
	"io"
	"sync"

	"github.com/nareix/joy4/av"
	"github.com/nareix/joy4/av/avutil"
	"github.com/nareix/joy4/format"
	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/packet"
)

// Container formats are registered with joy4 once per process, before the
// first open.
var registerFormats sync.Once

// Container is a Demuxer over a local media file (MP4, MPEG-TS, FLV, ...).
type Container struct {
	name    string
	demuxer av.DemuxCloser

	streams []StreamInfo
}

// OpenContainer opens the media file at path.
func OpenContainer(path string) (*Container, error) {
	registerFormats.Do(format.RegisterAll)

	log.Info("Opening file %s", path)
	demuxer, err := avutil.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return newContainer(path, demuxer), nil
}

func newContainer(name string, demuxer av.DemuxCloser) *Container {
	return &Container{name: name, demuxer: demuxer}
}

// Streams probes the container header. The result is cached.
func (c *Container) Streams() ([]StreamInfo, error) {
	if c.streams != nil {
		return c.streams, nil
	}

	codecs, err := c.demuxer.Streams()
	if err != nil {
		return nil, errors.Wrapf(err, "probe %s", c.name)
	}

	streams := make([]StreamInfo, len(codecs))
	for i, codec := range codecs {
		streams[i] = describe(i, codec)
		log.Info("Stream %v", streams[i])
	}
	c.streams = streams
	return streams, nil
}

func describe(index int, codec av.CodecData) StreamInfo {
	info := StreamInfo{
		Index:     index,
		Codec:     codec.Type().String(),
		CodecData: codec,
	}

	switch typ := codec.Type(); {
	case typ.IsVideo():
		info.Kind = Video
		if v, ok := codec.(av.VideoCodecData); ok {
			info.Width = v.Width()
			info.Height = v.Height()
		}
	case typ.IsAudio():
		info.Kind = Audio
		if a, ok := codec.(av.AudioCodecData); ok {
			info.SampleRate = a.SampleRate()
			info.Channels = a.ChannelLayout().Count()
		}
	}
	return info
}

// ReadPacket returns the next coded packet, or io.EOF at the end of the file.
func (c *Container) ReadPacket() (*packet.Packet, error) {
	pkt, err := c.demuxer.ReadPacket()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "read %s", c.name)
	}

	p := packet.New(int(pkt.Idx), pkt.Data, nil)
	p.DTS = pkt.Time
	p.PTS = pkt.Time + pkt.CompositionTime
	p.KeyFrame = pkt.IsKeyFrame

	log.Trace(5, "Read %v", p)
	return p, nil
}

func (c *Container) Close() error {
	return c.demuxer.Close()
}

// SelectStreams picks the first video stream and the first audio stream.
// Both must be present.
func SelectStreams(streams []StreamInfo) (video, audio StreamInfo, err error) {
	video.Index, audio.Index = -1, -1
	for _, s := range streams {
		switch {
		case s.Kind == Video && video.Index < 0:
			video = s
		case s.Kind == Audio && audio.Index < 0:
			audio = s
		}
	}

	if video.Index < 0 {
		return video, audio, ErrNoVideoStream
	}
	if audio.Index < 0 {
		return video, audio, ErrNoAudioStream
	}
	return video, audio, nil
}
