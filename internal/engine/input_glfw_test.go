package engine

import (
	"testing"

	"DodgeBall3D/internal/input"
)

func TestEveryPolledKeyIsMapped(t *testing.T) {
	for _, k := range input.Keys() {
		if _, ok := glfwKeys[k]; !ok {
			t.Errorf("Key %s has no glfw mapping", k)
		}
	}
}

func TestMouseButtonsMapped(t *testing.T) {
	for _, b := range []input.MouseButton{input.MouseLeft, input.MouseRight} {
		if _, ok := glfwButtons[b]; !ok {
			t.Errorf("Mouse button %d has no glfw mapping", b)
		}
	}
}
