package game

import (
	"DodgeBall3D/internal/renderer"
	"DodgeBall3D/internal/resource"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	meshCube   = "cube"
	meshSphere = "sphere"
	meshQuad   = "quad"
	meshFloor  = "floor"

	materialPlayer       = "player"
	materialBullet       = "bullet"
	materialWall         = "wall"
	materialFloor        = "floor"
	materialSpawnerBg    = "spawner_bg"
	spawnerFillSteps     = 4
	spawnerIndicatorSize = 0.8
)

var (
	colorPlayer    = mgl32.Vec3{0.2, 0.45, 0.9}
	colorBullet    = mgl32.Vec3{0.95, 0.3, 0.2}
	colorWall      = mgl32.Vec3{0.55, 0.55, 0.6}
	colorFloor     = mgl32.Vec3{0.9, 0.9, 0.85}
	colorSpawnerBg = mgl32.Vec3{0.15, 0.15, 0.15}
	colorFillCold  = mgl32.Vec3{1.0, 0.85, 0.2}
	colorFillHot   = mgl32.Vec3{1.0, 0.15, 0.1}
)

func cubeMesh(res *resource.Manager) *renderer.Mesh {
	return res.Mesh(meshCube, func() *renderer.Mesh { return renderer.NewCubeMesh(meshCube) })
}

func sphereMesh(res *resource.Manager) *renderer.Mesh {
	return res.Mesh(meshSphere, func() *renderer.Mesh { return renderer.NewSphereMesh(meshSphere, 16, 24) })
}

func quadMesh(res *resource.Manager) *renderer.Mesh {
	return res.Mesh(meshQuad, func() *renderer.Mesh { return renderer.NewQuadMesh(meshQuad) })
}

// floorMesh tints each tile with 2D perlin noise so the floor reads as a surface
// and not a flat color.
func floorMesh(res *resource.Manager, tiles int, seed int64) *renderer.Mesh {
	return res.Mesh(meshFloor, func() *renderer.Mesh {
		noise := perlin.NewPerlin(2, 2, 3, seed)
		return renderer.NewTiledFloorMesh(meshFloor, tiles, func(i, j int) float32 {
			n := float32(noise.Noise2D(float64(i)*0.35, float64(j)*0.35))
			checker := float32(0.04)
			if (i+j)%2 == 0 {
				checker = -checker
			}
			return 0.75 + 0.2*n + checker
		})
	})
}

func material(res *resource.Manager, name string, color mgl32.Vec3) *renderer.Material {
	return res.Material(name, func() *renderer.Material { return renderer.NewMaterial(name, color) })
}

// spawnerFill returns one of spawnerFillSteps shared materials blending from
// cold to hot as progress goes from 0 to 1.
func spawnerFill(res *resource.Manager, progress float32) *renderer.Material {
	step := int(mgl32.Clamp(progress, 0, 1) * spawnerFillSteps)
	if step >= spawnerFillSteps {
		step = spawnerFillSteps - 1
	}
	t := float32(step) / float32(spawnerFillSteps-1)
	color := colorFillCold.Mul(1 - t).Add(colorFillHot.Mul(t))
	return material(res, fmt.Sprintf("spawner_fill_%d", step), color)
}
