package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snakesize/game"
	"github.com/pthm-cable/snakesize/telemetry"
)

const (
	rankingRows = 5
	feedRows    = 4
	feedTicks   = 180 // how long a kill-feed line stays up
)

type feedLine struct {
	text    string
	expires int32
}

// HUD renders score, live ranking and a feed of recent deaths.
type HUD struct {
	painter *Painter
	feed    []feedLine
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{painter: NewPainter()}
}

// Draw renders the HUD for a playing snapshot.
func (h *HUD) Draw(s game.Snapshot, screenW int32, fps int32) {
	h.collect(s)
	if s.State != game.StatePlaying {
		return
	}

	p := h.painter
	th := p.Theme

	rl.DrawText(fmt.Sprintf("Score: %d", s.Player.Score), th.Padding, th.Padding, 24, rl.White)
	rl.DrawText(fmt.Sprintf("Bots alive: %d | FPS: %d", s.AliveBots(), fps), th.Padding, th.Padding+28, th.FontSize, th.LabelColor)

	panelW := int32(180)
	x := screenW - panelW - th.Padding
	y := th.Padding
	p.DrawPanel(x, y, panelW, th.LineHeight*(rankingRows+1)+th.Padding*2)
	y = p.DrawSectionHeader(x+th.Padding, y+th.Padding, "Top Snakes")

	rank := s.Ranking()
	for i := 0; i < len(rank) && i < rankingRows; i++ {
		col := th.ValueColor
		if rank[i].Player {
			col = th.Highlight
		}
		y = p.DrawLabelValue(x+th.Padding, y, fmt.Sprintf("%d. %s", i+1, rank[i].Name), fmt.Sprintf("%d", rank[i].Score), col)
	}

	y = th.Padding + 52
	for _, line := range h.feed {
		rl.DrawText(line.text, th.Padding, y, 12, th.LabelColor)
		y += 14
	}
}

// collect keeps the last few death and respawn events while they are fresh.
func (h *HUD) collect(s game.Snapshot) {
	for _, ev := range s.Events {
		var text string
		switch ev.Type {
		case telemetry.EventBotDied:
			text = fmt.Sprintf("%s died (%s) at %d", ev.Name, ev.Cause, ev.Score)
		case telemetry.EventBotRespawned:
			text = fmt.Sprintf("%s is back", ev.Name)
		default:
			continue
		}
		h.feed = append(h.feed, feedLine{text: text, expires: s.Tick + feedTicks})
	}

	kept := h.feed[:0]
	for _, line := range h.feed {
		if line.expires > s.Tick {
			kept = append(kept, line)
		}
	}
	if len(kept) > feedRows {
		kept = kept[len(kept)-feedRows:]
	}
	h.feed = kept
}

// Reset clears the feed, used when a new session starts.
func (h *HUD) Reset() {
	h.feed = h.feed[:0]
}
