package player

import (
	"fmt"
)

// Stage identifies which part of player initialization failed.
type Stage int

const (
	StageOpenInput Stage = iota
	StageFindStreamInfo
	StageFindStreams
	StageFindDecoder
	StageOpenDecoder
	StageCreateSurface
)

func (s Stage) String() string {
	switch s {
	case StageOpenInput:
		return "unable to open input"
	case StageFindStreamInfo:
		return "unable to find stream info"
	case StageFindStreams:
		return "unable to find audio or video stream"
	case StageFindDecoder:
		return "unable to find decoder"
	case StageOpenDecoder:
		return "unable to open decoder"
	case StageCreateSurface:
		return "unable to create presentation surface"
	default:
		return fmt.Sprintf("stage %d", int(s))
	}
}

// InitError is a fatal failure to set up playback. These are configuration or
// environment problems, so they are never retried.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Cause supports github.com/pkg/errors.Cause.
func (e *InitError) Cause() error {
	return e.Err
}
