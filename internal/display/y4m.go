//////////////////////////////////////////////////////////////////////////////
//
// YUV4MPEG2 file sink
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/media"
)

// FileSink writes presented frames as a YUV4MPEG2 stream, useful for testing
// or piping into another player. It never reports an interrupt.
type FileSink struct {
	w      *bufio.Writer
	closer io.Closer

	width, height int
	frames        int
}

// NewFileSink writes the stream header for width x height frames to w. If w is
// an io.Closer it is closed by Close.
func NewFileSink(w io.Writer, width, height int) (*FileSink, error) {
	s := &FileSink{
		w:      bufio.NewWriter(w),
		width:  width,
		height: height,
	}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}

	// Frame rate is unknown up front; 25 fps is the conventional default.
	if _, err := fmt.Fprintf(s.w, "YUV4MPEG2 W%d H%d F25:1 Ip A1:1 C420jpeg\n", width, height); err != nil {
		return nil, errors.Wrap(err, "write y4m header")
	}
	return s, nil
}

// Present writes one frame: a FRAME marker followed by the Y, Cb and Cr planes
// without row padding.
func (s *FileSink) Present(frame *media.Frame) error {
	img := frame.Image
	if frame.Width() != s.width || frame.Height() != s.height {
		return errors.Errorf("frame is %dx%d, stream is %dx%d",
			frame.Width(), frame.Height(), s.width, s.height)
	}

	if _, err := io.WriteString(s.w, "FRAME\n"); err != nil {
		return errors.Wrap(err, "write y4m frame")
	}

	r := img.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.YOffset(r.Min.X, y)
		if _, err := s.w.Write(img.Y[i : i+s.width]); err != nil {
			return errors.Wrap(err, "write luma")
		}
	}

	cw := (s.width + 1) / 2
	for _, plane := range [][]byte{img.Cb, img.Cr} {
		for y := r.Min.Y; y < r.Max.Y; y += 2 {
			i := img.COffset(r.Min.X, y)
			if _, err := s.w.Write(plane[i : i+cw]); err != nil {
				return errors.Wrap(err, "write chroma")
			}
		}
	}

	s.frames++
	return nil
}

func (s *FileSink) PollInterrupt() bool {
	return false
}

// Frames returns the number of frames written so far.
func (s *FileSink) Frames() int {
	return s.frames
}

func (s *FileSink) Close() error {
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
