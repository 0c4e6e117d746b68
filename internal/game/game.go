package game

import (
	"log"
	"path/filepath"

	"github.com/esklarski/SmallCreatureAI/internal/config"
	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/esklarski/SmallCreatureAI/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// SandboxGame hosts the pen in an ebiten window.
type SandboxGame struct {
	config    *config.Config
	world     *world.World
	creatures string // path of the creature definitions
	watcher   *config.Watcher

	input    *InputHandler
	renderer *Renderer
	ui       *UISystem

	paused  bool
	showHUD bool
	dt      float64
}

// NewSandboxGame wires input, rendering and hot reload around w.
// watcher may be nil to disable hot reload.
func NewSandboxGame(cfg *config.Config, w *world.World, creaturesPath string, watcher *config.Watcher) *SandboxGame {
	g := &SandboxGame{
		config:    cfg,
		world:     w,
		creatures: creaturesPath,
		watcher:   watcher,
		showHUD:   true,
		dt:        1 / float64(cfg.GetTargetFramerate()),
	}
	g.input = NewInputHandler(g)
	g.renderer = NewRenderer(g)
	g.ui = NewUISystem(g)
	return g
}

// Update handles all game logic updates for one tick
func (g *SandboxGame) Update() error {
	g.drainWatcher()
	g.input.HandleInput()

	if g.paused {
		return nil
	}
	g.world.Step(g.dt)
	return nil
}

// Draw handles all rendering for one frame
func (g *SandboxGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.showHUD {
		g.ui.Draw(screen)
	}
}

// Layout returns the screen dimensions
func (g *SandboxGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// ReloadCreatures re-reads the creature definitions and respawns the pen.
// A broken file leaves the current creatures in place.
func (g *SandboxGame) ReloadCreatures() error {
	defs, err := creature.LoadCreatureConfig(g.creatures)
	if err != nil {
		log.Printf("game: keeping current creatures: %v", err)
		return err
	}
	g.world.Respawn(defs)
	log.Printf("game: reloaded %s", g.creatures)
	return nil
}

// drainWatcher handles every pending file change without blocking.
func (g *SandboxGame) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.handleFileChange(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *SandboxGame) handleFileChange(name string) {
	if sameFile(name, g.creatures) {
		_ = g.ReloadCreatures()
		return
	}
	log.Printf("game: %s changed; restart to apply", filepath.Base(name))
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// World returns the simulation the game is hosting.
func (g *SandboxGame) World() *world.World { return g.world }

// Paused reports whether the simulation is frozen.
func (g *SandboxGame) Paused() bool { return g.paused }
