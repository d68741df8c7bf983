//go:build !cgo

package display

import (
	"github.com/pkg/errors"

	"github.com/lanikai/topos/internal/media"
)

// Window is unavailable without cgo.
type Window struct{}

func NewWindow(title string, width, height int) (*Window, error) {
	return nil, errors.New("create window: SDL support requires cgo")
}

func (w *Window) Present(frame *media.Frame) error { return nil }
func (w *Window) PollInterrupt() bool              { return false }
func (w *Window) Close() error                     { return nil }
