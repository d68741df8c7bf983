package media

import (
	"sort"

	"github.com/pkg/errors"
)

// A function used to open a decoder for a specific kind of stream.
type OpenDecoderFunc func(stream StreamInfo) (Decoder, error)

var registry = map[Kind]OpenDecoderFunc{}

// Register a decoder for a stream kind. Streams of this kind will be decoded by
// whatever the given function opens. Registration happens from init functions
// and is not safe for concurrent use.
func RegisterDecoderType(kind Kind, open OpenDecoderFunc) {
	registry[kind] = open
}

// OpenDecoder opens a decoder for the given stream. If nothing is registered
// for the stream's kind, the error wraps ErrDecoderNotFound.
func OpenDecoder(stream StreamInfo) (Decoder, error) {
	// Log known decoder kinds, for debug purposes.
	var kinds []string
	for k := range registry {
		kinds = append(kinds, k.String())
	}
	sort.Strings(kinds)
	log.Debug("Registered decoder kinds: %v", kinds)

	open, found := registry[stream.Kind]
	if !found {
		return nil, errors.Wrapf(ErrDecoderNotFound, "stream %v", stream)
	}
	return open(stream)
}
