package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// UISystem draws the heads-up display
type UISystem struct {
	game *SandboxGame
}

// NewUISystem creates a new UI system
func NewUISystem(game *SandboxGame) *UISystem {
	return &UISystem{game: game}
}

type coloredTextSegment struct {
	text  string
	color color.Color
}

func drawColoredTextSegments(screen *ebiten.Image, x, y int, segments []coloredTextSegment) {
	face := basicfont.Face7x13
	baseline := y + face.Ascent
	curX := x
	for _, seg := range segments {
		ebitext.Draw(screen, seg.text, face, curX, baseline, seg.color)
		curX += font.MeasureString(face, seg.text).Round()
	}
}

// drawAlertBadge draws a "!" centered on x with its bottom at y.
func drawAlertBadge(screen *ebiten.Image, x, y int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, "!").Round()
	vector.DrawFilledRect(screen, float32(x-w/2-3), float32(y-face.Height-1), float32(w+6), float32(face.Height+2), colornames.Yellow, false)
	ebitext.Draw(screen, "!", face, x-w/2, y-face.Descent, colornames.Red)
}

// Draw renders the HUD panel in the top-left corner.
func (ui *UISystem) Draw(screen *ebiten.Image) {
	w := ui.game.world
	stats := w.Stats()
	metrics := w.Monitor().GetCurrentMetrics()

	vector.DrawFilledRect(screen, 4, 4, 250, 84, color.RGBA{0, 0, 0, 160}, false)

	drawColoredTextSegments(screen, 10, 10, []coloredTextSegment{
		{fmt.Sprintf("t=%.1fs  ", w.Elapsed()), colornames.White},
		{fmt.Sprintf("%.0f TPS", ebiten.ActualTPS()), colornames.Lightgray},
	})
	drawColoredTextSegments(screen, 10, 26, []coloredTextSegment{
		{fmt.Sprintf("creatures %d  ", stats.Creatures), colornames.White},
		{fmt.Sprintf("walking %d", stats.Walking), colornames.Palegreen},
	})
	drawColoredTextSegments(screen, 10, 42, []coloredTextSegment{
		{fmt.Sprintf("fleeing %d  ", stats.Fleeing), colornames.Orange},
		{fmt.Sprintf("spooked %d", stats.Disturbed), colornames.Orangered},
	})
	drawColoredTextSegments(screen, 10, 58, []coloredTextSegment{
		{fmt.Sprintf("physics %v  ai %v", metrics.PhysicsTime.Round(time.Microsecond), metrics.BehaviorTime.Round(time.Microsecond)), colornames.Gray},
	})

	if ui.game.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED  (P resume, R reload, F1 hud)", 10, 74)
	}
}
