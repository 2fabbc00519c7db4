package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

var Debug bool = false
var DepthTestEnabled bool = true

// Rect is a screen space rectangle in pixels, origin at the top left corner.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ShadowMap is the depth texture produced by a shadow pass together with the
// light space matrix it was rendered with. The lit pass samples it.
type ShadowMap struct {
	Texture    uint32
	LightSpace mgl32.Mat4
}

// Render is the backend contract the game draws through.
//
// A frame is BeginFrame, one shadow pass, one lit pass, optional panels, EndFrame.
// EndShadowPass must return before BeginLitPass because the lit pass samples its result.
type Render interface {
	Init(width, height int32) error
	BeginFrame(clearColor mgl32.Vec3)
	EndFrame()

	BeginShadowPass(light *Light)
	DrawMesh3D(world mgl32.Mat4, mesh *Mesh)
	EndShadowPass() ShadowMap

	BeginLitPass(camera *Camera, light *Light)
	SetMaterial(material *Material)
	DrawMesh3DShadowed(world mgl32.Mat4, mesh *Mesh, shadow ShadowMap)

	DrawPanel2D(rect Rect, color mgl32.Vec4)
	UpdateViewport(width, height int32)
	Cleanup()
}
