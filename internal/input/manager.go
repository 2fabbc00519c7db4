package input

// Source is the raw per-frame input the window exposes.
type Source interface {
	KeyDown(key Key) bool
	MouseButtonDown(button MouseButton) bool
	CursorPos() (x, y float32)
}

// Manager samples a Source once per frame and classifies key edges against the
// previous sample.
type Manager struct {
	source   Source
	current  [keyCount]bool
	previous [keyCount]bool

	mouseCurrent  [mouseButtonCount]bool
	mousePrevious [mouseButtonCount]bool
	cursorX       float32
	cursorY       float32
}

func NewManager(source Source) *Manager {
	return &Manager{source: source}
}

// Update polls the source. Call it exactly once per frame before ticking.
func (m *Manager) Update() {
	m.previous = m.current
	m.mousePrevious = m.mouseCurrent
	if m.source == nil {
		return
	}
	for k := KeyUnknown + 1; k < keyCount; k++ {
		m.current[k] = m.source.KeyDown(k)
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		m.mouseCurrent[b] = m.source.MouseButtonDown(b)
	}
	m.cursorX, m.cursorY = m.source.CursorPos()
}

func (m *Manager) GetKeyPressState(key Key) KeyState {
	if key <= KeyUnknown || key >= keyCount {
		return None
	}
	return classify(m.previous[key], m.current[key])
}

func (m *Manager) IsKeyDown(key Key) bool {
	return m.GetKeyPressState(key).Down()
}

func (m *Manager) IsMouseButtonDown(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return m.mouseCurrent[button]
}

// IsMouseButtonPressed reports a press that started this frame.
func (m *Manager) IsMouseButtonPressed(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return classify(m.mousePrevious[button], m.mouseCurrent[button]) == Pressed
}

// CursorPos is in window pixels, origin at the top left.
func (m *Manager) CursorPos() (float32, float32) {
	return m.cursorX, m.cursorY
}

func classify(previous, current bool) KeyState {
	switch {
	case !previous && current:
		return Pressed
	case previous && current:
		return Held
	case previous && !current:
		return Released
	default:
		return None
	}
}
