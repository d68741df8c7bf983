package player

import (
	"image"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/media"
	"github.com/lanikai/topos/internal/packet"
)

const (
	videoIndex = 0
	audioIndex = 1
	width      = 64
	height     = 48
)

var testStreams = []media.StreamInfo{
	{Index: videoIndex, Kind: media.Video, Codec: "H264", Width: width, Height: height},
	{Index: audioIndex, Kind: media.Audio, Codec: "AAC", SampleRate: 48000, Channels: 2},
}

// releases counts how often each packet payload was released.
type releases struct {
	mu     sync.Mutex
	counts map[int]int
}

func (r *releases) hook(seq int) func() {
	return func() {
		r.mu.Lock()
		r.counts[seq]++
		r.mu.Unlock()
	}
}

func (r *releases) snapshot() map[int]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

type fakeDemuxer struct {
	streams    []media.StreamInfo
	streamsErr error

	// Stream index of each packet to produce, in order.
	layout []int
	next   int

	// Returned once layout is exhausted. Defaults to io.EOF.
	endErr error

	releases *releases
	closed   bool
}

func newFakeDemuxer(layout ...int) *fakeDemuxer {
	return &fakeDemuxer{
		streams:  testStreams,
		layout:   layout,
		releases: &releases{counts: map[int]int{}},
	}
}

// interleaved returns n video packets, each followed by an audio packet.
func interleaved(n int) []int {
	var layout []int
	for i := 0; i < n; i++ {
		layout = append(layout, videoIndex, audioIndex)
	}
	return layout
}

func (d *fakeDemuxer) Streams() ([]media.StreamInfo, error) {
	return d.streams, d.streamsErr
}

func (d *fakeDemuxer) ReadPacket() (*packet.Packet, error) {
	if d.next >= len(d.layout) {
		if d.endErr != nil {
			return nil, d.endErr
		}
		return nil, io.EOF
	}
	seq := d.next
	d.next++

	p := packet.New(d.layout[seq], []byte{byte(seq)}, d.releases.hook(seq))
	p.DTS = time.Duration(seq) * time.Millisecond
	p.PTS = p.DTS
	return p, nil
}

func (d *fakeDemuxer) reads() int {
	return d.next
}

func (d *fakeDemuxer) Close() error {
	d.closed = true
	return nil
}

type fakeDecoder struct {
	// Packet sequence numbers that fail to decode.
	fail map[int]bool

	mu             sync.Mutex
	framesReleased int
	closed         bool
}

func (d *fakeDecoder) Decode(pkt *packet.Packet) (*media.Frame, error) {
	seq := int(pkt.Data()[0])
	if d.fail[seq] {
		return nil, errors.Errorf("corrupt packet %d", seq)
	}
	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	return media.NewFrame(img, pkt.PTS, func() {
		d.mu.Lock()
		d.framesReleased++
		d.mu.Unlock()
	}), nil
}

func (d *fakeDecoder) Close() error {
	d.closed = true
	return nil
}

type presented struct {
	pts           time.Duration
	width, height int
}

type fakeSink struct {
	frames []presented

	// Report an interrupt once this many frames were presented (0: never).
	interruptAfter int

	polls  int
	closed bool
}

func (s *fakeSink) Present(frame *media.Frame) error {
	s.frames = append(s.frames, presented{frame.PTS, frame.Width(), frame.Height()})
	return nil
}

func (s *fakeSink) PollInterrupt() bool {
	s.polls++
	return s.interruptAfter > 0 && len(s.frames) >= s.interruptAfter
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

type harness struct {
	demuxer  *fakeDemuxer
	videoDec *fakeDecoder
	audioDec *fakeDecoder
	sink     *fakeSink
}

func newHarness(layout ...int) *harness {
	return &harness{
		demuxer:  newFakeDemuxer(layout...),
		videoDec: &fakeDecoder{},
		audioDec: &fakeDecoder{},
		sink:     &fakeSink{},
	}
}

func (h *harness) config() Config {
	return Config{
		Input: "test.mp4",
		OpenDemuxer: func(string) (media.Demuxer, error) {
			return h.demuxer, nil
		},
		OpenDecoder: func(stream media.StreamInfo) (media.Decoder, error) {
			if stream.Kind == media.Video {
				return h.videoDec, nil
			}
			return h.audioDec, nil
		},
		CreateSink: func(w, h2 int) (Sink, error) {
			return h.sink, nil
		},
	}
}
