package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/Bastczuak/bytepath/component"
	"github.com/Bastczuak/bytepath/constant"
	"github.com/Bastczuak/bytepath/core"
	"github.com/Bastczuak/bytepath/engine"
	"github.com/Bastczuak/bytepath/vmath"
)

// Renderer draws the final per-step component state onto a terminal
// screen. It is a pure consumer: it reads positions, sprites and the
// camera/flash resources after simulation steps and never mutates them
type Renderer struct {
	screen tcell.Screen
}

// New wraps an initialized tcell screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

type drawable struct {
	x, y   float64
	sprite component.SpriteComponent
	length float64 // line particles only
	angle  float64
}

// Draw renders one frame
func (r *Renderer) Draw(w *engine.World) {
	bg := styleFor(constant.ColorBackground)
	r.screen.Fill(' ', bg)

	cols, rows := r.screen.Size()
	if cols < 1 || rows < 1 {
		return
	}
	cfg := w.Resources.Config
	sx := float64(cols) / cfg.ScreenWidth
	sy := float64(rows) / cfg.ScreenHeight
	camX, camY := w.Resources.Camera.X, w.Resources.Camera.Y

	items := collect(w)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sprite.Z < items[j].sprite.Z
	})

	for _, d := range items {
		cx := int((d.x + camX) * sx)
		cy := int((d.y + camY) * sy)
		r.drawSprite(d, cx, cy, sx, sy)
	}

	if w.Resources.Flash.Frames > 0 {
		flash := styleFor(core.RGB{R: 255, G: 255, B: 255})
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				r.screen.SetContent(x, y, '█', nil, flash)
			}
		}
	}

	r.screen.Show()
}

func collect(w *engine.World) []drawable {
	entities := w.Components.Sprite.All()
	items := make([]drawable, 0, len(entities))

	for _, e := range entities {
		sprite, _ := w.Components.Sprite.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}
		d := drawable{x: pos.X, y: pos.Y, sprite: sprite, angle: sprite.Rotation}
		if line, isLine := w.Components.LineParticle.Get(e); isLine {
			d.length = line.Length
			if angle, hasAngle := w.Components.Angle.Get(e); hasAngle {
				d.angle = angle.Radians
			}
		}
		items = append(items, d)
	}
	return items
}

func (r *Renderer) drawSprite(d drawable, cx, cy int, sx, sy float64) {
	style := styleFor(d.sprite.Color)

	switch d.sprite.Kind {
	case component.SpriteShip:
		r.set(cx, cy, headingRune(d.sprite.Rotation), style)
	case component.SpriteProjectile:
		r.set(cx, cy, '•', style)
	case component.SpriteDeadProjectile:
		ch := '✦'
		if d.sprite.Frame > 0 {
			ch = '✧'
		}
		r.set(cx, cy, ch, style)
	case component.SpriteShootEffect:
		if d.sprite.Scale > 0.3 {
			r.set(cx, cy, '▪', style)
		}
	case component.SpriteTickEffect:
		if d.sprite.Scale > 0.3 {
			r.set(cx, cy, '○', style)
		}
	case component.SpriteTrail:
		switch {
		case d.sprite.Scale > 0.66:
			r.set(cx, cy, '●', style)
		case d.sprite.Scale > 0.33:
			r.set(cx, cy, '•', style)
		case d.sprite.Scale > 0.05:
			r.set(cx, cy, '·', style)
		}
	case component.SpriteAmmo:
		r.set(cx, cy, '▰', style)
	case component.SpriteBoost:
		r.set(cx, cy, '◆', style)
	case component.SpriteLine:
		r.drawLine(d, cx, cy, sx, sy, style)
	}
}

// drawLine renders a burst line outward from the particle position
func (r *Renderer) drawLine(d drawable, cx, cy int, sx, sy float64, style tcell.Style) {
	hx, hy := vmath.Heading(d.angle)
	steps := int(d.length)
	for i := 0; i <= steps; i++ {
		x := cx + int(hx*float64(i)*sx)
		y := cy + int(hy*float64(i)*sy)
		r.set(x, y, '·', style)
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// headingRune picks an 8-direction arrow for the ship's heading
func headingRune(angle float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	sector := int(math.Round(vmath.WrapAngle(angle)/(math.Pi/4))) % 8
	return arrows[sector]
}

func styleFor(c core.RGB) tcell.Style {
	red, green, blue := c.Components()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(red, green, blue)).
		Background(tcell.NewRGBColor(constant.ColorBackground.Components()))
}
