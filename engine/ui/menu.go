package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/wave-arena/engine/core"
)

var (
	overlayBG   = color.RGBA{0, 0, 0, 180}
	menuPanel   = color.RGBA{15, 15, 30, 230}
	menuBorder  = color.RGBA{0, 140, 200, 255}
	menuText    = color.RGBA{200, 220, 255, 255}
	bannerColor = color.RGBA{220, 30, 30, 255}
)

// Overlay draws the full-screen messages on top of the arena: the wave
// banner during a transition, the pause screen and the game-over panel
type Overlay struct {
	ScreenW, ScreenH int
	face             *text.GoXFace
}

func NewOverlay(screenW, screenH int) *Overlay {
	return &Overlay{
		ScreenW: screenW,
		ScreenH: screenH,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// BannerText returns the wave announcement, or "" when no wave is pending
func BannerText(w *core.World) string {
	if w.Run.Phase != core.PhaseWaveTransition {
		return ""
	}
	return fmt.Sprintf("Wave %d", w.Run.Wave)
}

// GameOverLines returns the text of the game-over panel
func GameOverLines(w *core.World) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", w.Hero.Score),
		fmt.Sprintf("Reached wave %d", w.Run.Wave),
		"R: try again   Esc: exit",
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, w *core.World, paused bool) {
	switch {
	case w.GameOver():
		o.drawGameOver(screen, w)
	case paused:
		o.drawPanel(screen, []string{"PAUSED", "P: resume"})
	default:
		if s := BannerText(w); s != "" {
			o.drawCentered(screen, s, float64(o.ScreenH)/2, 4, bannerColor)
		}
	}
}

func (o *Overlay) drawGameOver(screen *ebiten.Image, w *core.World) {
	vector.DrawFilledRect(screen, 0, 0, float32(o.ScreenW), float32(o.ScreenH), overlayBG, false)
	o.drawPanel(screen, GameOverLines(w))
}

func (o *Overlay) drawPanel(screen *ebiten.Image, lines []string) {
	panelW, panelH := 320, 60+len(lines)*28
	px := float32(o.ScreenW/2 - panelW/2)
	py := float32(o.ScreenH/2 - panelH/2)
	vector.DrawFilledRect(screen, px, py, float32(panelW), float32(panelH), menuPanel, false)
	vector.StrokeRect(screen, px, py, float32(panelW), float32(panelH), 2, menuBorder, false)

	y := float64(py) + 40
	for i, line := range lines {
		scale := 1.5
		if i == 0 {
			scale = 2.5
		}
		o.drawCentered(screen, line, y, scale, menuText)
		y += 28
	}
}

// drawCentered draws s horizontally centred with its vertical middle at y
func (o *Overlay) drawCentered(screen *ebiten.Image, s string, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(o.ScreenW)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, o.face, op)
}
