// Package renderer draws game snapshots with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snakesize/camera"
	"github.com/pthm-cable/snakesize/components"
	"github.com/pthm-cable/snakesize/game"
)

// ArenaRenderer draws the world, food and organisms of a snapshot through
// the snapshot's camera.
type ArenaRenderer struct {
	gridSpacing float64

	background rl.Color
	gridColor  rl.Color
	borderSize float32
	border     rl.Color
}

// NewArenaRenderer creates a renderer with the default arena palette.
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{
		gridSpacing: 50,
		background:  rl.Color{R: 17, G: 24, B: 39, A: 255},
		gridColor:   rl.Color{R: 31, G: 41, B: 55, A: 255},
		borderSize:  4,
		border:      rl.Color{R: 239, G: 68, B: 68, A: 255},
	}
}

// Draw renders s. Call between rl.BeginDrawing and rl.EndDrawing.
func (r *ArenaRenderer) Draw(s game.Snapshot) {
	rl.ClearBackground(r.background)
	if s.State == game.StateMenu {
		return
	}

	cam := &s.Camera
	r.drawGrid(cam)
	r.drawBorder(cam, s.WorldSize)

	for _, f := range s.Food {
		if !cam.IsVisible(f.Position.X, f.Position.Y, f.Radius) {
			continue
		}
		x, y := toScreen(cam, f.Position)
		rl.DrawCircle(x, y, float32(f.Radius*cam.Zoom), toRL(f.Color))
	}

	for _, b := range s.Bots {
		if b.Alive {
			r.drawOrganism(cam, b, s.SegmentSize)
		}
	}
	if s.Player.Alive || s.State == game.StateGameOver {
		r.drawOrganism(cam, s.Player, s.SegmentSize)
	}
}

// drawOrganism draws tail to head so the head sits on top, then the name.
func (r *ArenaRenderer) drawOrganism(cam *camera.Camera, o game.OrganismView, radius float64) {
	if len(o.Body) == 0 {
		return
	}
	col := toRL(o.Color)
	if !o.Alive {
		col.A = 120
	}
	scaled := radius * cam.Zoom

	for i := len(o.Body) - 1; i >= 0; i-- {
		seg := o.Body[i]
		if !cam.IsVisible(seg.X, seg.Y, radius) {
			continue
		}
		x, y := toScreen(cam, seg)
		rl.DrawCircle(x, y, float32(scaled), col)
	}

	head := o.Body[0]
	if !cam.IsVisible(head.X, head.Y, radius*4) {
		return
	}
	hx, hy := toScreen(cam, head)

	// Eyes sit across the heading.
	sin, cos := math.Sincos(o.Heading)
	for _, side := range []float64{-1, 1} {
		ex := float64(hx) + cos*scaled*0.4 - sin*scaled*0.5*side
		ey := float64(hy) + sin*scaled*0.4 + cos*scaled*0.5*side
		rl.DrawCircle(int32(ex), int32(ey), float32(scaled*0.3), rl.White)
	}

	width := rl.MeasureText(o.Name, 12)
	rl.DrawText(o.Name, hx-width/2, hy-int32(scaled)-16, 12, rl.White)
}

func (r *ArenaRenderer) drawGrid(cam *camera.Camera) {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	screenW, screenH := int32(cam.ViewportW), int32(cam.ViewportH)

	for x := math.Floor(minX/r.gridSpacing) * r.gridSpacing; x <= maxX; x += r.gridSpacing {
		sx, _ := cam.WorldToScreen(x, 0)
		rl.DrawLine(int32(sx), 0, int32(sx), screenH, r.gridColor)
	}
	for y := math.Floor(minY/r.gridSpacing) * r.gridSpacing; y <= maxY; y += r.gridSpacing {
		_, sy := cam.WorldToScreen(0, y)
		rl.DrawLine(0, int32(sy), screenW, int32(sy), r.gridColor)
	}
}

func (r *ArenaRenderer) drawBorder(cam *camera.Camera, size float64) {
	x, y := cam.WorldToScreen(0, 0)
	rect := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(size * cam.Zoom),
		Height: float32(size * cam.Zoom),
	}
	rl.DrawRectangleLinesEx(rect, r.borderSize, r.border)
}

func toScreen(cam *camera.Camera, p components.Point) (int32, int32) {
	x, y := cam.WorldToScreen(p.X, p.Y)
	return int32(x), int32(y)
}

func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
