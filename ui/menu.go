package ui

import (
	"fmt"
	"unicode/utf8"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snakesize/game"
)

// Action is what the player asked for on a menu screen.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionPlayAgain
	ActionMenu
)

const maxNameLen = 16

// Menu draws the name-entry screen and the game-over screen.
type Menu struct {
	painter *Painter
	Name    string
}

// NewMenu creates a menu with the name field pre-filled.
func NewMenu(name string) *Menu {
	return &Menu{painter: NewPainter(), Name: name}
}

// Draw renders the screen for s and returns the chosen action.
func (m *Menu) Draw(s game.Snapshot, screenW, screenH int32) Action {
	switch s.State {
	case game.StateMenu:
		return m.drawStart(s, screenW, screenH)
	case game.StateGameOver:
		return m.drawGameOver(s, screenW, screenH)
	default:
		return ActionNone
	}
}

func (m *Menu) drawStart(s game.Snapshot, screenW, screenH int32) Action {
	p := m.painter
	th := p.Theme
	cx := screenW / 2

	m.editName()

	p.DrawCentered("snakesize", cx, screenH/6, th.TitleFontSize, th.Highlight)
	p.DrawCentered("Steer with the mouse. Eat to grow. Don't touch other snakes.", cx, screenH/6+50, th.FontSize, th.LabelColor)

	boxW := int32(240)
	box := rl.Rectangle{X: float32(cx - boxW/2), Y: float32(screenH/6 + 90), Width: float32(boxW), Height: 36}
	rl.DrawRectangleRec(box, th.PanelBg)
	rl.DrawRectangleLinesEx(box, 2, th.Highlight)
	label := m.Name
	if label == "" {
		label = "your name"
	}
	p.DrawCentered(label, cx, int32(box.Y)+10, 18, th.ValueColor)

	start := gui.Button(rl.Rectangle{X: box.X, Y: box.Y + 50, Width: box.Width, Height: 36}, "Start")
	if start || rl.IsKeyPressed(rl.KeyEnter) {
		return ActionStart
	}

	m.drawLeaderboard(s, cx, int32(box.Y)+110)
	return ActionNone
}

func (m *Menu) drawGameOver(s game.Snapshot, screenW, screenH int32) Action {
	p := m.painter
	th := p.Theme
	cx := screenW / 2

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{R: 0, G: 0, B: 0, A: 160})
	p.DrawCentered("Game Over", cx, screenH/6, th.TitleFontSize, rl.Red)

	if s.HasSession {
		rec := s.LastSession
		p.DrawCentered(fmt.Sprintf("%s scored %d", rec.Name, rec.Score), cx, screenH/6+56, 20, th.ValueColor)
		if rec.Rank > 0 {
			p.DrawCentered(fmt.Sprintf("Leaderboard rank #%d", rec.Rank), cx, screenH/6+82, th.FontSize, th.Highlight)
		}
	}

	y := float32(screenH/6 + 110)
	if gui.Button(rl.Rectangle{X: float32(cx - 125), Y: y, Width: 120, Height: 36}, "Play Again") || rl.IsKeyPressed(rl.KeyEnter) {
		return ActionPlayAgain
	}
	if gui.Button(rl.Rectangle{X: float32(cx + 5), Y: y, Width: 120, Height: 36}, "Menu") {
		return ActionMenu
	}

	m.drawLeaderboard(s, cx, int32(y)+60)
	return ActionNone
}

func (m *Menu) drawLeaderboard(s game.Snapshot, cx, y int32) {
	p := m.painter
	th := p.Theme
	if len(s.Leaderboard) == 0 {
		return
	}

	panelW := int32(240)
	x := cx - panelW/2
	p.DrawPanel(x, y, panelW, th.LineHeight*int32(len(s.Leaderboard)+1)+th.Padding*2)
	y = p.DrawSectionHeader(x+th.Padding, y+th.Padding, "Leaderboard")
	for i, e := range s.Leaderboard {
		y = p.DrawLabelValue(x+th.Padding, y, fmt.Sprintf("%d. %s", i+1, e.Name), fmt.Sprintf("%d", e.Score), th.ValueColor)
	}
}

// editName applies this frame's typed characters and backspace to Name.
func (m *Menu) editName() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		if r >= 32 && r < 127 && utf8.RuneCountInString(m.Name) < maxNameLen {
			m.Name += string(rune(r))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && m.Name != "" {
		_, size := utf8.DecodeLastRuneInString(m.Name)
		m.Name = m.Name[:len(m.Name)-size]
	}
}
