package game

import (
	"image/color"
	"math"

	"github.com/esklarski/SmallCreatureAI/internal/world"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Palette
var (
	groundColor  = colornames.Darkolivegreen
	wallColor    = colornames.Saddlebrown
	rockColor    = colornames.Slategray
	meadowColor  = color.RGBA{120, 170, 80, 255}
	playerColor  = colornames.Royalblue
	headingColor = colornames.Black
	triggerColor = colornames.Orangered
	defaultBody  = colornames.Sandybrown
)

const (
	penPadding      = 24.0 // pixels around the pen
	strideAmplitude = 0.12 // fraction of body radius
	headingLength   = 1.6  // heading tick length in body radii
)

// Renderer draws the pen top-down: +X to the right, +Z down the screen.
type Renderer struct {
	game *SandboxGame
}

// NewRenderer creates a new renderer
func NewRenderer(game *SandboxGame) *Renderer {
	return &Renderer{game: game}
}

// projection maps world XZ to screen pixels.
type projection struct {
	cx, cy float64
	scale  float64
}

// newProjection centers the pen on screen at the configured scale, shrinking
// it if the pen would not fit.
func newProjection(screenW, screenH int, penW, penD, pixelsPerUnit float64) projection {
	scale := pixelsPerUnit
	if penW > 0 && penD > 0 {
		fit := math.Min((float64(screenW)-2*penPadding)/penW, (float64(screenH)-2*penPadding)/penD)
		if fit > 0 && fit < scale {
			scale = fit
		}
	}
	return projection{cx: float64(screenW) / 2, cy: float64(screenH) / 2, scale: scale}
}

func (p projection) point(v mgl64.Vec3) (float32, float32) {
	return float32(p.cx + v.X()*p.scale), float32(p.cy + v.Z()*p.scale)
}

func (p projection) length(l float64) float32 {
	return float32(l * p.scale)
}

// Draw renders the pen, its creatures and the player.
func (r *Renderer) Draw(screen *ebiten.Image) {
	cfg := r.game.config
	w := r.game.world
	bounds := w.Bounds()
	proj := newProjection(cfg.GetScreenWidth(), cfg.GetScreenHeight(), bounds.Width, bounds.Depth, cfg.GetPixelsPerUnit())

	screen.Fill(colornames.Black)
	x0, y0 := proj.point(mgl64.Vec3{-bounds.Width / 2, 0, -bounds.Depth / 2})
	vector.DrawFilledRect(screen, x0, y0, proj.length(bounds.Width), proj.length(bounds.Depth), groundColor, false)
	vector.StrokeRect(screen, x0, y0, proj.length(bounds.Width), proj.length(bounds.Depth), 3, wallColor, false)

	for _, m := range bounds.Meadows {
		x, y := proj.point(mgl64.Vec3{m.X, 0, m.Z})
		vector.DrawFilledCircle(screen, x, y, proj.length(m.Radius), meadowColor, true)
	}
	for _, rock := range bounds.Rocks {
		x, y := proj.point(mgl64.Vec3{rock.X - rock.Width/2, 0, rock.Z - rock.Depth/2})
		vector.DrawFilledRect(screen, x, y, proj.length(rock.Width), proj.length(rock.Depth), rockColor, false)
	}

	for _, c := range w.Creatures() {
		r.drawCreature(screen, proj, c)
	}

	player := w.Player()
	r.drawBody(screen, proj, player.Transform.Position, player.Transform.Forward(), player.Radius(), playerColor)
}

func (r *Renderer) drawCreature(screen *ebiten.Image, proj projection, c *world.Creature) {
	pos := c.Transform.Position
	forward := c.Transform.Forward()

	if c.Gait.Forward() {
		// sway sideways with the stride
		side := mgl64.Vec3{forward.Z(), 0, -forward.X()}
		pos = pos.Add(side.Mul(math.Sin(c.Gait.Phase()*2*math.Pi) * strideAmplitude * c.Radius()))
	}

	if c.Disturbed() && c.TriggerRadius() > 0 {
		x, y := proj.point(c.Transform.Position)
		vector.StrokeCircle(screen, x, y, proj.length(c.TriggerRadius()), 1, triggerColor, true)
	}

	r.drawBody(screen, proj, pos, forward, c.Radius(), creatureColor(c.Color))

	if c.Alert.Active() {
		x, y := proj.point(pos)
		drawAlertBadge(screen, int(x), int(y-proj.length(c.Radius()))-4)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, proj projection, pos, forward mgl64.Vec3, radius float64, clr color.Color) {
	x, y := proj.point(pos)
	vector.DrawFilledCircle(screen, x, y, proj.length(radius), clr, true)
	hx, hy := proj.point(pos.Add(forward.Mul(radius * headingLength)))
	vector.StrokeLine(screen, x, y, hx, hy, 2, headingColor, true)
}

// creatureColor turns a configured RGB triple into a color; all zero means unset.
func creatureColor(rgb [3]int) color.Color {
	if rgb == [3]int{} {
		return defaultBody
	}
	return color.RGBA{clampByte(rgb[0]), clampByte(rgb[1]), clampByte(rgb[2]), 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
