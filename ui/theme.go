// Package ui draws the menu, game-over screen and in-game HUD.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Highlight      rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		Highlight:      rl.Color{R: 16, G: 185, B: 129, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     110,
		FontSize:       14,
		HeaderFontSize: 16,
		TitleFontSize:  40,
	}
}

// Painter handles UI drawing with consistent styling.
type Painter struct {
	Theme Theme
}

// NewPainter creates a painter with the default theme.
func NewPainter() *Painter {
	return &Painter{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (p *Painter) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, p.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, p.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (p *Painter) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, p.Theme.HeaderFontSize, p.Theme.SectionHeader)
	return y + p.Theme.LineHeight + 2
}

// DrawLabelValue draws a label and value on the same line and returns the new Y.
func (p *Painter) DrawLabelValue(x, y int32, label, value string, color rl.Color) int32 {
	rl.DrawText(label, x, y, p.Theme.FontSize, p.Theme.LabelColor)
	rl.DrawText(value, x+p.Theme.LabelWidth, y, p.Theme.FontSize, color)
	return y + p.Theme.LineHeight
}

// DrawCentered draws text horizontally centered on cx.
func (p *Painter) DrawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}
