package behaviour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()

	if !tr.World().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity world matrix, got %v", tr.World())
	}
	if tr.Scale() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", tr.Scale())
	}
}

func TestTransformSetLocation(t *testing.T) {
	tr := NewTransform()
	tr.SetLocation(mgl32.Vec3{1, 2, 3})

	p := tr.World().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected origin mapped to (1,2,3), got %v", p.Vec3())
	}
}

func TestTransformScaleBeforeTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Set(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})

	p := tr.World().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{12, 0, 0}) {
		t.Errorf("Expected (12,0,0), got %v", p.Vec3())
	}
}

func TestTransformRotationOrder(t *testing.T) {
	half := float32(math.Pi / 2)
	tr := NewTransformAt(mgl32.Vec3{}, mgl32.Vec3{half, half, half}, mgl32.Vec3{1, 1, 1})

	want := mgl32.HomogRotate3DZ(half).Mul4(mgl32.HomogRotate3DX(half)).Mul4(mgl32.HomogRotate3DY(half))
	if !tr.World().ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected Z*X*Y rotation, got %v", tr.World())
	}

	// +X: Y(90) gives -Z, X(90) gives +Y, Z(90) gives -X.
	p := tr.World().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !vecNear(p, mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected (-1,0,0), got %v", p)
	}
}

func TestTransformSettersRecompute(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(mgl32.Vec3{3, 3, 3})
	before := tr.World()
	tr.Translate(mgl32.Vec3{1, 0, 0})

	if tr.World() == before {
		t.Error("Expected Translate to recompute the world matrix")
	}
	if tr.Location() != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected location (1,0,0), got %v", tr.Location())
	}
	tr.SetRotate(mgl32.Vec3{0, 1, 0})
	if tr.Rotation() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected rotation (0,1,0), got %v", tr.Rotation())
	}
}

// vecNear compares with an absolute tolerance. mgl32's ApproxEqualThreshold
// switches to eps*eps when one side is zero, which rejects rounding noise.
func vecNear(a, b mgl32.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestVecNearAcceptsRoundingNoise(t *testing.T) {
	noisy := mgl32.Vec3{-1, -8.742278e-08, 4.371139e-08}
	if !vecNear(noisy, mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected %v near (-1,0,0)", noisy)
	}
	if vecNear(mgl32.Vec3{-1, 0.01, 0}, mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Error("Expected a 0.01 offset to be rejected")
	}
}
