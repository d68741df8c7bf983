package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOnlyMovesForward(t *testing.T) {
	var s atomicState
	assert.Equal(t, Starting, s.load())

	assert.True(t, s.advance(Running))
	assert.False(t, s.advance(Running))
	assert.False(t, s.transition(Starting, Draining))
	assert.True(t, s.transition(Running, Draining))
	assert.False(t, s.advance(Running))
	assert.True(t, s.advance(Stopped))
	assert.Equal(t, "Stopped", s.load().String())
}

func TestStatsString(t *testing.T) {
	s := Stats{PacketsRead: 3, FramesPresented: 2, Discarded: 1}
	assert.Contains(t, s.String(), "read=3")
	assert.Contains(t, s.String(), "presented=2")
	assert.Contains(t, s.String(), "discarded=1")
}
