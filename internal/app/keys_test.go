package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStateEdges(t *testing.T) {
	s := NewKeyState()

	s.Handle(KeyW, Press)
	assert.True(t, s.Down(KeyW))
	assert.True(t, s.JustPressed(KeyW))

	// a repeat is not a new press
	s.PostUpdate()
	s.Handle(KeyW, Repeat)
	assert.True(t, s.Down(KeyW))
	assert.False(t, s.JustPressed(KeyW))

	s.Handle(KeyW, Release)
	assert.False(t, s.Down(KeyW))
	assert.True(t, s.JustReleased(KeyW))

	s.PostUpdate()
	assert.False(t, s.JustReleased(KeyW))

	// releasing a key that was never down is not an edge
	s.Handle(KeyQ, Release)
	assert.False(t, s.JustReleased(KeyQ))
}

func TestKeyValues(t *testing.T) {
	// these must line up with the window system's tokens
	assert.Equal(t, Key(256), KeyEscape)
	assert.Equal(t, Key(65), KeyA)
	assert.Equal(t, Key(90), KeyZ)
	assert.Equal(t, Key(57), Key9)
	assert.Equal(t, Key(265), KeyUp)
	assert.Equal(t, Key(290), KeyF1)
	assert.Equal(t, Key(301), KeyF12)
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "unknown", Action(7).String())
}
