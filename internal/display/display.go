// Package display presents decoded 4:2:0 frames: on screen through SDL2, or
// as a YUV4MPEG2 stream for headless use.
package display

import (
	"github.com/lanikai/topos/internal/logging"
)

var log = logging.DefaultLogger.WithTag("display")
