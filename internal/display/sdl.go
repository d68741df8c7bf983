//go:build cgo

//////////////////////////////////////////////////////////////////////////////
//
// SDL2 presentation window
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package display

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lanikai/topos/internal/media"
)

// Window shows frames in an SDL window through a streaming YV12 texture. All
// methods must be called from the goroutine that created the window, locked
// to the main OS thread.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width, height int
}

// NewWindow initializes SDL and creates a window, renderer and texture sized
// for width x height frames. On failure everything created so far is torn
// down again.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, errors.Wrap(err, "initialize SDL")
	}

	w := &Window{width: width, height: height}

	var err error
	w.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		w.Close()
		return nil, errors.Wrap(err, "create window")
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Close()
		return nil, errors.Wrap(err, "create renderer")
	}

	if info, err := w.renderer.GetInfo(); err == nil {
		log.Debug("Renderer %s, max texture %dx%d", info.Name, info.MaxTextureWidth, info.MaxTextureHeight)
	}

	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_YV12), sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		w.Close()
		return nil, errors.Wrap(err, "create texture")
	}

	log.Info("Created %dx%d window", width, height)
	return w, nil
}

// Present uploads the three planes of frame and shows them.
func (w *Window) Present(frame *media.Frame) error {
	img := frame.Image
	if err := w.texture.UpdateYUV(nil,
		img.Y, img.YStride,
		img.Cb, img.CStride,
		img.Cr, img.CStride); err != nil {
		return errors.Wrap(err, "upload frame")
	}
	if err := w.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return errors.Wrap(err, "copy texture")
	}
	w.renderer.Present()
	return nil
}

// PollInterrupt drains pending events and reports whether the user asked to
// quit, by closing the window or pressing Escape.
func (w *Window) PollInterrupt() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}
		}
	}
	return quit
}

// Close destroys the texture, renderer and window, then shuts down SDL.
func (w *Window) Close() error {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	return nil
}
