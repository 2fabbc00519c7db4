package ui

import (
	"DodgeBall3D/internal/input"
	"DodgeBall3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Panel is a flat colored rectangle.
type Panel struct {
	Rect    renderer.Rect
	Color   mgl32.Vec4
	Visible bool
}

func NewPanel(rect renderer.Rect, color mgl32.Vec4) *Panel {
	return &Panel{Rect: rect, Color: color, Visible: true}
}

func (p *Panel) Draw(r renderer.Render) {
	if !p.Visible || p.Color.W() <= 0 {
		return
	}
	r.DrawPanel2D(p.Rect, p.Color)
}

// Button fires OnClick on a hotkey press or a left click inside its rect.
type Button struct {
	Label      string
	Rect       renderer.Rect
	Hotkey     input.Key
	Color      mgl32.Vec4
	HoverColor mgl32.Vec4
	OnClick    func()
	Visible    bool

	hovered bool
}

func NewButton(label string, rect renderer.Rect, hotkey input.Key, onClick func()) *Button {
	return &Button{
		Label:      label,
		Rect:       rect,
		Hotkey:     hotkey,
		Color:      mgl32.Vec4{0.2, 0.2, 0.25, 0.85},
		HoverColor: mgl32.Vec4{0.35, 0.35, 0.45, 0.95},
		OnClick:    onClick,
		Visible:    true,
	}
}

// Update reports whether the button fired this frame. Hidden buttons never fire.
func (b *Button) Update(in *input.Manager) bool {
	if !b.Visible || in == nil {
		b.hovered = false
		return false
	}
	x, y := in.CursorPos()
	b.hovered = b.Rect.Contains(x, y)

	fired := in.GetKeyPressState(b.Hotkey) == input.Pressed ||
		(b.hovered && in.IsMouseButtonPressed(input.MouseLeft))
	if fired && b.OnClick != nil {
		b.OnClick()
	}
	return fired
}

func (b *Button) Hovered() bool {
	return b.hovered
}

func (b *Button) Draw(r renderer.Render) {
	if !b.Visible {
		return
	}
	color := b.Color
	if b.hovered {
		color = b.HoverColor
	}
	r.DrawPanel2D(b.Rect, color)
}

// Layer is an ordered set of buttons shown together.
type Layer struct {
	Buttons []*Button
}

func (l *Layer) Add(b *Button) *Button {
	l.Buttons = append(l.Buttons, b)
	return b
}

// Update stops at the first button that fires so one key press triggers one action.
func (l *Layer) Update(in *input.Manager) bool {
	for _, b := range l.Buttons {
		if b.Update(in) {
			return true
		}
	}
	return false
}

func (l *Layer) Draw(r renderer.Render) {
	for _, b := range l.Buttons {
		b.Draw(r)
	}
}

// Column lays out n buttons of size w x h centered horizontally in a screen of
// the given width, starting at top and separated by gap.
func Column(screenWidth, top, w, h, gap float32, n int) []renderer.Rect {
	rects := make([]renderer.Rect, n)
	x := (screenWidth - w) / 2
	for i := range rects {
		rects[i] = renderer.Rect{X: x, Y: top + float32(i)*(h+gap), W: w, H: h}
	}
	return rects
}
