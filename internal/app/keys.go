package app

import "sync"

// Key is a physical key. The values match GLFW's key tokens.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyMinus   Key = 45
	KeyPeriod  Key = 46
	KeyEqual   Key = 61
)

const (
	Key0 Key = iota + 48
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

const (
	KeyA Key = iota + 65
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	KeyEscape Key = iota + 256
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

const (
	KeyF1 Key = iota + 290
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	KeyKPSubtract Key = 333
	KeyKPAdd      Key = 334
	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyLeftAlt    Key = 342
	KeyRightShift Key = 344
	KeyRightCtrl  Key = 345
	KeyRightAlt   Key = 346
)

// Action is what happened to a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// ModifierKey is a bit set of held modifiers.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseButton values match GLFW's button tokens.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyState tracks held keys and the press and release edges of the current
// frame.
type KeyState struct {
	mu sync.RWMutex

	down         map[Key]bool
	justPressed  map[Key]bool
	justReleased map[Key]bool
}

func NewKeyState() *KeyState {
	return &KeyState{
		down:         make(map[Key]bool),
		justPressed:  make(map[Key]bool),
		justReleased: make(map[Key]bool),
	}
}

// Handle records a key event. Repeats count as held.
func (s *KeyState) Handle(key Key, action Action) {
	isPressed := action == Press || action == Repeat

	s.mu.Lock()
	defer s.mu.Unlock()

	// Detect edges immediately when event arrives
	if isPressed && !s.down[key] {
		s.justPressed[key] = true
	}
	if !isPressed && s.down[key] {
		s.justReleased[key] = true
	}
	s.down[key] = isPressed
}

// PostUpdate clears the edges. The host calls it at the end of each frame.
func (s *KeyState) PostUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.justPressed)
	clear(s.justReleased)
}

// Down reports whether key is held.
func (s *KeyState) Down(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.down[key]
}

// JustPressed reports whether key went down during the current frame.
func (s *KeyState) JustPressed(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.justPressed[key]
}

// JustReleased reports whether key went up during the current frame.
func (s *KeyState) JustReleased(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.justReleased[key]
}
