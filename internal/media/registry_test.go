package media

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanikai/topos/internal/packet"
)

type nopDecoder struct{}

func (nopDecoder) Decode(pkt *packet.Packet) (*Frame, error) {
	img := image.NewYCbCr(image.Rect(0, 0, 4, 2), image.YCbCrSubsampleRatio420)
	return NewFrame(img, pkt.PTS, nil), nil
}

func (nopDecoder) Close() error { return nil }

func TestOpenDecoderRegistered(t *testing.T) {
	RegisterDecoderType(Other, func(StreamInfo) (Decoder, error) {
		return nopDecoder{}, nil
	})
	defer delete(registry, Other)

	dec, err := OpenDecoder(StreamInfo{Index: 3, Kind: Other})
	require.NoError(t, err)

	frame, err := dec.Decode(packet.New(3, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 4, frame.Width())
	assert.Equal(t, 2, frame.Height())
}

func TestOpenDecoderNotFound(t *testing.T) {
	_, err := OpenDecoder(StreamInfo{Index: 7, Kind: Kind(42)})
	assert.True(t, errors.Is(err, ErrDecoderNotFound))
}

func TestFrameReleaseOnce(t *testing.T) {
	released := 0
	f := NewFrame(image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), 0, func() { released++ })
	f.Release()
	f.Release()
	assert.Equal(t, 1, released)

	var nilFrame *Frame
	nilFrame.Release()
}
