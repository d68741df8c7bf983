//////////////////////////////////////////////////////////////////////////////
//
// Media errors
//
// Copyright 2019 Lanikai Labs LLC. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package media

import "github.com/pkg/errors"

var (
	ErrDecoderNotFound = errors.New("no decoder found")
	ErrNoVideoStream   = errors.New("no video stream")
	ErrNoAudioStream   = errors.New("no audio stream")
)
