package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedBufferRelease(t *testing.T) {
	done := 0
	buf := NewSharedBuffer([]byte{0xc0, 0xff, 0xee}, 1, func() { done++ })

	buf.Hold()
	buf.Release()
	assert.Equal(t, 0, done)
	assert.Equal(t, []byte{0xc0, 0xff, 0xee}, buf.Bytes())

	buf.Release()
	assert.Equal(t, 1, done)
	assert.Nil(t, buf.Bytes())
	assert.False(t, buf.Held())

	// Releasing again must not call done twice.
	buf.Release()
	assert.Equal(t, 1, done)
}

func TestPacketRelease(t *testing.T) {
	done := 0
	p := New(1, []byte{1, 2, 3}, func() { done++ })
	assert.Equal(t, 3, p.Len())
	assert.False(t, p.Released())

	p.Release()
	p.Release()
	assert.Equal(t, 1, done)
	assert.True(t, p.Released())

	var nilPacket *Packet
	nilPacket.Release()
}
