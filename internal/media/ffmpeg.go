//go:build cgo

//////////////////////////////////////////////////////////////////////////////
//
// Video and audio decoders backed by FFmpeg
//
// Copyright 2019 Lanikai Labs LLC. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package media

import (
	"strings"

	"github.com/nareix/joy4/av"
	"github.com/nareix/joy4/cgo/ffmpeg"
	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/color"
	"github.com/lanikai/topos/internal/packet"
)

func init() {
	ffmpeg.SetLogLevel(ffmpeg.QUIET)

	RegisterDecoderType(Video, openVideoDecoder)
	RegisterDecoderType(Audio, openAudioDecoder)
}

// joy4 reports a missing codec and a failed open through the same error
// return; tell them apart so the caller can report the right cause.
func wrapOpenError(err error, stream StreamInfo) error {
	msg := err.Error()
	if strings.Contains(msg, "cannot find") || strings.Contains(msg, "unsupported") {
		return errors.Wrapf(ErrDecoderNotFound, "stream %v: %v", stream, err)
	}
	return errors.Wrapf(err, "open decoder for stream %v", stream)
}

type videoDecoder struct {
	dec    *ffmpeg.VideoDecoder
	stream StreamInfo
}

func openVideoDecoder(stream StreamInfo) (Decoder, error) {
	if stream.CodecData == nil {
		return nil, errors.Wrapf(ErrDecoderNotFound, "stream %v has no codec parameters", stream)
	}

	dec, err := ffmpeg.NewVideoDecoder(stream.CodecData)
	if err != nil {
		return nil, wrapOpenError(err, stream)
	}
	log.Debug("Opened video decoder for stream %v", stream)
	return &videoDecoder{dec: dec, stream: stream}, nil
}

func (d *videoDecoder) Decode(pkt *packet.Packet) (*Frame, error) {
	if d.dec == nil {
		return nil, errors.New("video decoder closed")
	}

	img, err := d.dec.Decode(pkt.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "decode %v", pkt)
	}
	if img == nil {
		// Decoder needs more data.
		return nil, nil
	}

	yuv := color.ToYUV420(&img.Image)
	if yuv != &img.Image {
		// Converted into Go memory; the FFmpeg frame is no longer needed.
		img.Free()
		return NewFrame(yuv, pkt.PTS, nil), nil
	}
	return NewFrame(yuv, pkt.PTS, img.Free), nil
}

// The FFmpeg context is freed by joy4's finalizer once unreferenced.
func (d *videoDecoder) Close() error {
	d.dec = nil
	return nil
}

// audioDecoder is opened alongside the video decoder, but audio output is not
// implemented: decoded samples are discarded.
type audioDecoder struct {
	dec    *ffmpeg.AudioDecoder
	stream StreamInfo
}

func openAudioDecoder(stream StreamInfo) (Decoder, error) {
	codec, ok := stream.CodecData.(av.AudioCodecData)
	if !ok {
		return nil, errors.Wrapf(ErrDecoderNotFound, "stream %v has no audio codec parameters", stream)
	}

	dec, err := ffmpeg.NewAudioDecoder(codec)
	if err != nil {
		return nil, wrapOpenError(err, stream)
	}
	log.Debug("Opened audio decoder for stream %v", stream)
	return &audioDecoder{dec: dec, stream: stream}, nil
}

func (d *audioDecoder) Decode(pkt *packet.Packet) (*Frame, error) {
	if d.dec == nil {
		return nil, errors.New("audio decoder closed")
	}
	if _, _, err := d.dec.Decode(pkt.Data()); err != nil {
		return nil, errors.Wrapf(err, "decode %v", pkt)
	}
	return nil, nil
}

func (d *audioDecoder) Close() error {
	d.dec = nil
	return nil
}
