package input

// Key is an engine key code. The window maps its native codes onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyTab
	KeyR
	KeyQ
	KeySpace
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "Unknown",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyEnter:   "Enter",
	KeyEscape:  "Escape",
	KeyTab:     "Tab",
	KeyR:       "R",
	KeyQ:       "Q",
	KeySpace:   "Space",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keys lists every polled key.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	mouseButtonCount
)

// KeyState is the edge classified state of a key for the current frame.
type KeyState uint8

const (
	None KeyState = iota
	Pressed
	Held
	Released
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Held:
		return "Held"
	case Released:
		return "Released"
	default:
		return "None"
	}
}

// Down reports Pressed or Held.
func (s KeyState) Down() bool {
	return s == Pressed || s == Held
}
