package game

import (
	"DodgeBall3D/internal/input"
	"DodgeBall3D/internal/renderer"
	"DodgeBall3D/internal/ui"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	buttonWidth  = 240
	buttonHeight = 48
	buttonGap    = 16
	pipSize      = 18
	pipGap       = 8
	rankBarH     = 14
)

var (
	colorPip      = mgl32.Vec4{0.9, 0.2, 0.25, 0.9}
	colorPipLost  = mgl32.Vec4{0.3, 0.3, 0.3, 0.6}
	colorRankBar  = mgl32.Vec4{0.8, 0.8, 0.85, 0.9}
	colorRankThis = mgl32.Vec4{1.0, 0.8, 0.2, 0.95}
	colorFade     = mgl32.Vec3{0.05, 0.05, 0.08}
)

// hud holds one button layer per scene state plus the overlays drawn on top of
// the 3D frame.
type hud struct {
	scene  *Scene
	layers map[State]*ui.Layer
	fade   *ui.Panel

	showRank      bool
	width, height float32
}

func newHUD(s *Scene, width, height float32) *hud {
	h := &hud{
		scene: s,
		layers: map[State]*ui.Layer{
			StateReady: {},
			StatePlay:  {},
			StatePause: {},
			StateDone:  {},
		},
		fade: ui.NewPanel(renderer.Rect{}, colorFade.Vec4(0)),
	}

	ready := h.layers[StateReady]
	ready.Add(ui.NewButton("Start", renderer.Rect{}, input.KeyEnter, s.request(StatePlay)))
	ready.Add(ui.NewButton("Quit", renderer.Rect{}, input.KeyQ, s.quit))

	play := h.layers[StatePlay]
	pause := ui.NewButton("Pause", renderer.Rect{}, input.KeyEscape, s.request(StatePause))
	play.Add(pause)

	paused := h.layers[StatePause]
	paused.Add(ui.NewButton("Resume", renderer.Rect{}, input.KeyEscape, s.request(StatePlay)))
	paused.Add(ui.NewButton("Reset", renderer.Rect{}, input.KeyR, s.request(StateReady)))
	paused.Add(ui.NewButton("Quit", renderer.Rect{}, input.KeyQ, s.quit))

	done := h.layers[StateDone]
	done.Add(ui.NewButton("Rank", renderer.Rect{}, input.KeyTab, func() { h.showRank = !h.showRank }))
	done.Add(ui.NewButton("Reset", renderer.Rect{}, input.KeyR, s.request(StateReady)))
	done.Add(ui.NewButton("Quit", renderer.Rect{}, input.KeyQ, s.quit))

	h.layout(width, height)
	return h
}

// layout centers each menu column and pins the pause button to the top right.
func (h *hud) layout(width, height float32) {
	h.width, h.height = width, height
	h.fade.Rect = renderer.Rect{W: width, H: height}

	for state, layer := range h.layers {
		if state == StatePlay {
			for _, b := range layer.Buttons {
				b.Rect = renderer.Rect{X: width - buttonWidth/2 - buttonGap, Y: buttonGap, W: buttonWidth / 2, H: buttonHeight}
			}
			continue
		}
		n := len(layer.Buttons)
		top := (height - float32(n)*(buttonHeight+buttonGap)) / 2
		for i, rect := range ui.Column(width, top, buttonWidth, buttonHeight, buttonGap, n) {
			layer.Buttons[i].Rect = rect
		}
	}
}

func (h *hud) update(in *input.Manager, state State) {
	if layer, ok := h.layers[state]; ok {
		layer.Update(in)
	}
}

func (h *hud) draw(r renderer.Render, state State) {
	if state == StateDone {
		h.fade.Color = colorFade.Vec4(0.75 * h.scene.FadeAlpha())
		h.fade.Draw(r)
	}
	if state == StatePlay || state == StatePause {
		h.drawLives(r)
	}
	if state == StateDone && h.showRank {
		h.drawRank(r)
	}
	if layer, ok := h.layers[state]; ok {
		layer.Draw(r)
	}
}

func (h *hud) drawLives(r renderer.Render) {
	p := h.scene.Player()
	if p == nil {
		return
	}
	for i := 0; i < p.Lives(); i++ {
		color := colorPip
		if i >= p.HP() {
			color = colorPipLost
		}
		r.DrawPanel2D(renderer.Rect{X: pipGap + float32(i)*(pipSize+pipGap), Y: pipGap, W: pipSize, H: pipSize}, color)
	}
}

// drawRank shows the stored play times as bars scaled to the best one. The bar
// of the round that just ended is highlighted.
func (h *hud) drawRank(r renderer.Render) {
	log := h.scene.ctx.PlayLog
	if log == nil {
		return
	}
	records := log.Records()
	if len(records) == 0 || records[0].Time <= 0 {
		return
	}
	maxW := h.width / 3
	for i, rec := range records {
		color := colorRankBar
		if i+1 == h.scene.LastRank() {
			color = colorRankThis
		}
		w := maxW * rec.Time / records[0].Time
		r.DrawPanel2D(renderer.Rect{X: pipGap, Y: pipGap + float32(i)*(rankBarH+pipGap/2), W: w, H: rankBarH}, color)
	}
}
