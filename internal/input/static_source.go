package input

// StaticSource is a Source whose state is set by hand. It drives headless runs
// and tests.
type StaticSource struct {
	keys    map[Key]bool
	buttons map[MouseButton]bool
	x, y    float32
}

func NewStaticSource() *StaticSource {
	return &StaticSource{
		keys:    make(map[Key]bool),
		buttons: make(map[MouseButton]bool),
	}
}

func (s *StaticSource) Press(key Key) { s.keys[key] = true }
func (s *StaticSource) Release(key Key) { s.keys[key] = false }

func (s *StaticSource) PressButton(button MouseButton) { s.buttons[button] = true }
func (s *StaticSource) ReleaseButton(button MouseButton) { s.buttons[button] = false }

func (s *StaticSource) SetCursor(x, y float32) {
	s.x, s.y = x, y
}

func (s *StaticSource) KeyDown(key Key) bool { return s.keys[key] }
func (s *StaticSource) MouseButtonDown(button MouseButton) bool { return s.buttons[button] }
func (s *StaticSource) CursorPos() (float32, float32) { return s.x, s.y }
