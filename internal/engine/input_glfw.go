package engine

import (
	"DodgeBall3D/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyLeft:   glfw.KeyLeft,
	input.KeyRight:  glfw.KeyRight,
	input.KeyUp:     glfw.KeyUp,
	input.KeyDown:   glfw.KeyDown,
	input.KeyEnter:  glfw.KeyEnter,
	input.KeyEscape: glfw.KeyEscape,
	input.KeyTab:    glfw.KeyTab,
	input.KeyR:      glfw.KeyR,
	input.KeyQ:      glfw.KeyQ,
	input.KeySpace:  glfw.KeySpace,
}

var glfwButtons = map[input.MouseButton]glfw.MouseButton{
	input.MouseLeft:  glfw.MouseButtonLeft,
	input.MouseRight: glfw.MouseButtonRight,
}

// windowSource reads raw key and mouse state straight from the glfw window.
type windowSource struct {
	window *glfw.Window
}

func (s *windowSource) KeyDown(key input.Key) bool {
	k, ok := glfwKeys[key]
	return ok && s.window.GetKey(k) == glfw.Press
}

func (s *windowSource) MouseButtonDown(button input.MouseButton) bool {
	b, ok := glfwButtons[button]
	return ok && s.window.GetMouseButton(b) == glfw.Press
}

// CursorPos is in window coordinates, the space the UI lays out in.
func (s *windowSource) CursorPos() (float32, float32) {
	x, y := s.window.GetCursorPos()
	return float32(x), float32(y)
}
