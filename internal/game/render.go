package game

import (
	"DodgeBall3D/internal/behaviour"
	"DodgeBall3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

var clearColor = mgl32.Vec3{0.08, 0.09, 0.12}

// Render draws one frame: a depth-only shadow pass over every renderable, then
// the lit pass sampling its shadow map, then the UI overlay.
func (s *Scene) Render(r renderer.Render) {
	if !s.entered {
		return
	}
	renderables := s.renderables()

	r.BeginFrame(clearColor)

	r.BeginShadowPass(s.light)
	for _, e := range renderables {
		r.DrawMesh3D(e.World(), e.Mesh())
	}
	shadow := r.EndShadowPass()

	r.BeginLitPass(s.camera, s.light)
	for _, e := range renderables {
		r.SetMaterial(e.Material())
		r.DrawMesh3DShadowed(e.World(), e.Mesh(), shadow)
	}
	for _, sp := range s.spawners {
		r.SetMaterial(sp.Material())
		r.DrawMesh3DShadowed(sp.World(), sp.Mesh(), shadow)
		if sp.Progress() > 0 {
			r.SetMaterial(sp.FillMaterial())
			r.DrawMesh3DShadowed(sp.FillWorld(), sp.Mesh(), shadow)
		}
	}

	s.hud.draw(r, s.state)
	r.EndFrame()
}

// renderables rebuilds the list of live entities that cast and receive shadows.
func (s *Scene) renderables() []behaviour.Entity {
	list := s.renderList[:0]
	list = append(list, s.floor, s.player)
	for _, w := range s.walls {
		list = append(list, w)
	}
	for _, b := range s.bullets {
		if b.Initialized() {
			list = append(list, b)
		}
	}
	s.renderList = list
	return list
}
