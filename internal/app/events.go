package app

// Event is something a Window reports from PollEvents.
type Event interface {
	event()
}

type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// ResizeEvent carries the new window size in pixels.
type ResizeEvent struct {
	Width, Height int
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorEvent is the cursor position relative to the top-left corner.
type CursorEvent struct {
	X, Y float64
}

type ScrollEvent struct {
	X, Y float64
}

func (KeyEvent) event()         {}
func (ResizeEvent) event()      {}
func (MouseButtonEvent) event() {}
func (CursorEvent) event()      {}
func (ScrollEvent) event()      {}
