package input

import (
	"testing"
)

func TestKeyStateTransitions(t *testing.T) {
	src := NewStaticSource()
	m := NewManager(src)

	m.Update()
	if got := m.GetKeyPressState(KeyLeft); got != None {
		t.Errorf("Expected None before press, got %s", got)
	}

	src.Press(KeyLeft)
	m.Update()
	if got := m.GetKeyPressState(KeyLeft); got != Pressed {
		t.Errorf("Expected Pressed on first frame down, got %s", got)
	}

	m.Update()
	if got := m.GetKeyPressState(KeyLeft); got != Held {
		t.Errorf("Expected Held on second frame down, got %s", got)
	}

	src.Release(KeyLeft)
	m.Update()
	if got := m.GetKeyPressState(KeyLeft); got != Released {
		t.Errorf("Expected Released on first frame up, got %s", got)
	}

	m.Update()
	if got := m.GetKeyPressState(KeyLeft); got != None {
		t.Errorf("Expected None after release, got %s", got)
	}
}

func TestIsKeyDown(t *testing.T) {
	src := NewStaticSource()
	m := NewManager(src)

	src.Press(KeyUp)
	m.Update()
	if !m.IsKeyDown(KeyUp) {
		t.Error("Pressed key should be down")
	}
	m.Update()
	if !m.IsKeyDown(KeyUp) {
		t.Error("Held key should be down")
	}
	if m.IsKeyDown(KeyDown) {
		t.Error("Untouched key should not be down")
	}
}

func TestUnknownKeyIsNone(t *testing.T) {
	m := NewManager(NewStaticSource())
	m.Update()

	if got := m.GetKeyPressState(Key(999)); got != None {
		t.Errorf("Expected None for out of range key, got %s", got)
	}
	if Key(999).String() != "Unknown" {
		t.Errorf("Expected Unknown name, got %s", Key(999).String())
	}
}

func TestMouseAndCursor(t *testing.T) {
	src := NewStaticSource()
	m := NewManager(src)

	src.PressButton(MouseLeft)
	src.SetCursor(120, 40)
	m.Update()

	if !m.IsMouseButtonDown(MouseLeft) || !m.IsMouseButtonPressed(MouseLeft) {
		t.Error("Expected left button down and pressed this frame")
	}
	x, y := m.CursorPos()
	if x != 120 || y != 40 {
		t.Errorf("Expected cursor (120,40), got (%v,%v)", x, y)
	}

	m.Update()
	if m.IsMouseButtonPressed(MouseLeft) {
		t.Error("Held button should not report a new press")
	}
}

func TestNilSource(t *testing.T) {
	m := NewManager(nil)
	m.Update()

	if m.IsKeyDown(KeyEnter) {
		t.Error("Manager without a source should report nothing down")
	}
}

func TestKeysListsAllPolledKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != int(keyCount)-1 {
		t.Errorf("Expected %d keys, got %d", keyCount-1, len(keys))
	}
	for _, k := range keys {
		if k.String() == "Unknown" {
			t.Errorf("Key %d has no name", int(k))
		}
	}
}
