package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/wave-arena/engine/ai"
	"github.com/1siamBot/wave-arena/engine/core"
)

// ThreatRadius is the range the danger gauge looks at around the hero
const ThreatRadius = 150.0

var (
	barBG      = color.RGBA{0, 0, 0, 180}
	slotBG     = color.RGBA{20, 20, 40, 220}
	slotReady  = color.RGBA{50, 220, 80, 255}
	slotIdle   = color.RGBA{220, 50, 50, 255}
	threatFill = color.RGBA{255, 140, 0, 255}
)

// HUD is the heads-up display: status bar on top, hotbar at the bottom
type HUD struct {
	ScreenW, ScreenH int
	TopBarHeight     int
	SlotWidth        int
	SlotHeight       int
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		TopBarHeight: 24,
		SlotWidth:    130,
		SlotHeight:   40,
	}
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, w *core.World) {
	h.drawTopBar(screen, w)
	h.drawHotbar(screen, w)
}

// StatusLine is the text of the top bar
func StatusLine(w *core.World) string {
	return fmt.Sprintf("Score: %d | Health: %.0f | Wave: %d | Enemies: %d",
		w.Hero.Score, w.Hero.Health, w.Run.Wave, len(w.Enemies))
}

func (h *HUD) drawTopBar(screen *ebiten.Image, w *core.World) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), barBG, false)
	ebitenutil.DebugPrintAt(screen, StatusLine(w), 10, 5)

	// danger gauge, right-aligned
	gw := float32(100)
	gx := float32(h.ScreenW) - gw - 10
	level := float32(ai.Threat(w, ThreatRadius))
	if level > 1 {
		level = 1
	}
	vector.StrokeRect(screen, gx, 6, gw, 12, 1, color.White, false)
	vector.DrawFilledRect(screen, gx, 6, gw*level, 12, threatFill, false)
}

func (h *HUD) drawHotbar(screen *ebiten.Image, w *core.World) {
	slots := w.Hotbar()
	gap := 8
	total := len(slots)*h.SlotWidth + (len(slots)-1)*gap
	x := (h.ScreenW - total) / 2
	y := h.ScreenH - h.SlotHeight - 8

	for _, s := range slots {
		border := slotIdle
		if s.Ready {
			border = slotReady
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(h.SlotWidth), float32(h.SlotHeight), slotBG, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(h.SlotWidth), float32(h.SlotHeight), 2, border, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d] %s", s.Key, s.Label), x+6, y+4)
		ebitenutil.DebugPrintAt(screen, s.Text, x+6, y+20)
		x += h.SlotWidth + gap
	}
}
