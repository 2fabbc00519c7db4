package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per vertex in Mesh.InterleavedData:
// position (3), texture coordinate (2), normal (3), vertex color (3).
const VertexStride = 11

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  mgl32.Vec3{1.0, 1.0, 1.0},
	SpecularColor: mgl32.Vec3{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Alpha:         1.0,
}

// Mesh is CPU side geometry plus the GPU handles the backend fills on first draw.
// Meshes are shared between game objects and owned by the resource cache.
type Mesh struct {
	// HOT DATA
	VAO uint32
	VBO uint32
	EBO uint32

	// COLD DATA
	Name            string
	InterleavedData []float32
	Faces           []uint32
	Radius          float32 // bounding radius in model space
}

type Material struct {
	DiffuseColor  mgl32.Vec3
	SpecularColor mgl32.Vec3
	Shininess     float32
	Alpha         float32 // Transparency (0.0 = transparent, 1.0 = opaque)

	Name string
}

func NewMaterial(name string, diffuse mgl32.Vec3) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  diffuse,
		SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:     32.0,
		Alpha:         1.0,
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.InterleavedData) / VertexStride
}

func (m *Mesh) IsUploaded() bool {
	return m.VAO != 0
}

type meshBuilder struct {
	data  []float32
	faces []uint32
}

func (b *meshBuilder) vertex(pos mgl32.Vec3, uv mgl32.Vec2, normal, color mgl32.Vec3) uint32 {
	index := uint32(len(b.data) / VertexStride)
	b.data = append(b.data,
		pos.X(), pos.Y(), pos.Z(),
		uv.X(), uv.Y(),
		normal.X(), normal.Y(), normal.Z(),
		color.X(), color.Y(), color.Z())
	return index
}

func (b *meshBuilder) quad(a, c, d, e mgl32.Vec3, normal, color mgl32.Vec3) {
	i0 := b.vertex(a, mgl32.Vec2{0, 0}, normal, color)
	i1 := b.vertex(c, mgl32.Vec2{1, 0}, normal, color)
	i2 := b.vertex(d, mgl32.Vec2{1, 1}, normal, color)
	i3 := b.vertex(e, mgl32.Vec2{0, 1}, normal, color)
	b.faces = append(b.faces, i0, i1, i2, i0, i2, i3)
}

func (b *meshBuilder) build(name string) *Mesh {
	mesh := &Mesh{Name: name, InterleavedData: b.data, Faces: b.faces}
	var maxSq float32
	for i := 0; i < len(b.data); i += VertexStride {
		p := mgl32.Vec3{b.data[i], b.data[i+1], b.data[i+2]}
		if d := p.LenSqr(); d > maxSq {
			maxSq = d
		}
	}
	mesh.Radius = float32(math.Sqrt(float64(maxSq)))
	return mesh
}

var white = mgl32.Vec3{1, 1, 1}

// NewCubeMesh builds a unit cube centered on the origin (half width 0.5).
func NewCubeMesh(name string) *Mesh {
	var b meshBuilder
	h := float32(0.5)
	// +X
	b.quad(mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{1, 0, 0}, white)
	// -X
	b.quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-1, 0, 0}, white)
	// +Y
	b.quad(mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{0, 1, 0}, white)
	// -Y
	b.quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{0, -1, 0}, white)
	// +Z
	b.quad(mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{0, 0, 1}, white)
	// -Z
	b.quad(mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{0, 0, -1}, white)
	return b.build(name)
}

// NewSphereMesh builds a UV sphere of radius 0.5 centered on the origin.
func NewSphereMesh(name string, rings, sectors int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if sectors < 3 {
		sectors = 3
	}
	var b meshBuilder
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		for s := 0; s <= sectors; s++ {
			theta := 2 * math.Pi * float64(s) / float64(sectors)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			uv := mgl32.Vec2{float32(s) / float32(sectors), float32(r) / float32(rings)}
			b.vertex(n.Mul(0.5), uv, n, white)
		}
	}
	row := uint32(sectors + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(sectors); s++ {
			a := r*row + s
			c := a + row
			b.faces = append(b.faces, a, c, a+1, a+1, c, c+1)
		}
	}
	return b.build(name)
}

// NewQuadMesh builds a unit quad on the XZ plane facing +Y.
func NewQuadMesh(name string) *Mesh {
	var b meshBuilder
	h := float32(0.5)
	b.quad(mgl32.Vec3{-h, 0, h}, mgl32.Vec3{h, 0, h}, mgl32.Vec3{h, 0, -h}, mgl32.Vec3{-h, 0, -h}, mgl32.Vec3{0, 1, 0}, white)
	return b.build(name)
}

// NewTiledFloorMesh builds a unit quad on the XZ plane split into tiles x tiles cells.
// shade returns the gray level of cell (i, j).
func NewTiledFloorMesh(name string, tiles int, shade func(i, j int) float32) *Mesh {
	if tiles < 1 {
		tiles = 1
	}
	var b meshBuilder
	step := 1.0 / float32(tiles)
	up := mgl32.Vec3{0, 1, 0}
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			x0 := -0.5 + float32(i)*step
			z0 := -0.5 + float32(j)*step
			g := mgl32.Clamp(shade(i, j), 0, 1)
			color := mgl32.Vec3{g, g, g}
			b.quad(
				mgl32.Vec3{x0, 0, z0 + step},
				mgl32.Vec3{x0 + step, 0, z0 + step},
				mgl32.Vec3{x0 + step, 0, z0},
				mgl32.Vec3{x0, 0, z0},
				up, color)
		}
	}
	return b.build(name)
}
