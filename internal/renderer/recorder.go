package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one backend call captured by a Recorder.
type Call struct {
	Op       string
	Mesh     *Mesh
	Material *Material
	World    mgl32.Mat4
	Rect     Rect
	Color    mgl32.Vec4
}

func (c Call) String() string {
	if c.Mesh != nil {
		return fmt.Sprintf("%s(%s)", c.Op, c.Mesh.Name)
	}
	return c.Op
}

// Recorder is a headless Render that records every call in order. It backs
// tests and runs without a GL context.
type Recorder struct {
	Calls         []Call
	Width, Height int32
	inShadowPass  bool
	inLitPass     bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Init(width, height int32) error {
	r.Width, r.Height = width, height
	r.record(Call{Op: "Init"})
	return nil
}

func (r *Recorder) BeginFrame(clearColor mgl32.Vec3) {
	r.record(Call{Op: "BeginFrame", Color: clearColor.Vec4(1)})
}

func (r *Recorder) EndFrame() {
	r.inLitPass = false
	r.record(Call{Op: "EndFrame"})
}

func (r *Recorder) BeginShadowPass(light *Light) {
	r.inShadowPass = true
	r.record(Call{Op: "BeginShadowPass"})
}

func (r *Recorder) DrawMesh3D(world mgl32.Mat4, mesh *Mesh) {
	if !r.inShadowPass {
		panic("DrawMesh3D outside shadow pass")
	}
	r.record(Call{Op: "DrawMesh3D", Mesh: mesh, World: world})
}

func (r *Recorder) EndShadowPass() ShadowMap {
	r.inShadowPass = false
	r.record(Call{Op: "EndShadowPass"})
	return ShadowMap{Texture: 1, LightSpace: mgl32.Ident4()}
}

func (r *Recorder) BeginLitPass(camera *Camera, light *Light) {
	if r.inShadowPass {
		panic("BeginLitPass before EndShadowPass")
	}
	r.inLitPass = true
	r.record(Call{Op: "BeginLitPass"})
}

func (r *Recorder) SetMaterial(material *Material) {
	r.record(Call{Op: "SetMaterial", Material: material})
}

func (r *Recorder) DrawMesh3DShadowed(world mgl32.Mat4, mesh *Mesh, shadow ShadowMap) {
	if !r.inLitPass {
		panic("DrawMesh3DShadowed outside lit pass")
	}
	r.record(Call{Op: "DrawMesh3DShadowed", Mesh: mesh, World: world})
}

func (r *Recorder) DrawPanel2D(rect Rect, color mgl32.Vec4) {
	r.record(Call{Op: "DrawPanel2D", Rect: rect, Color: color})
}

func (r *Recorder) UpdateViewport(width, height int32) {
	r.Width, r.Height = width, height
	r.record(Call{Op: "UpdateViewport"})
}

func (r *Recorder) Cleanup() {
	r.record(Call{Op: "Cleanup"})
}

// Ops returns the recorded operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Index returns the position of the first call with the given op, or -1.
func (r *Recorder) Index(op string) int {
	for i, c := range r.Calls {
		if c.Op == op {
			return i
		}
	}
	return -1
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.inShadowPass = false
	r.inLitPass = false
}

var _ Render = (*Recorder)(nil)
var _ Render = (*OpenGLRenderer)(nil)
