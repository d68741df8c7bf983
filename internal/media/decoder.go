//////////////////////////////////////////////////////////////////////////////
//
// Media decoder interface for codecs
//
// Copyright 2019 Lanikai Labs LLC. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package media

import (
	"io"

	"github.com/lanikai/topos/internal/packet"
)

// Decoder is the interface for audio and video decoders.
type Decoder interface {
	io.Closer

	// Decode consumes one coded packet. It returns a frame once enough data
	// has accumulated, and nil otherwise. The caller keeps ownership of pkt
	// and owns the returned frame.
	Decode(pkt *packet.Packet) (*Frame, error)
}
