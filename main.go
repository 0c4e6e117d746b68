package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/esklarski/SmallCreatureAI/internal/config"
	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/esklarski/SmallCreatureAI/internal/game"
	"github.com/esklarski/SmallCreatureAI/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the sandbox configuration")
	headless := flag.Float64("headless", 0, "run this many simulated seconds without a window, then exit")
	seed := flag.Int64("seed", 0, "world seed (overrides simulation.seed)")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)

	// Load creature definitions
	creaturesPath := cfg.GetCreaturesFile()
	defs := creature.MustLoadCreatureConfig(creaturesPath)

	worldSeed := cfg.Simulation.Seed
	if *seed != 0 {
		worldSeed = *seed
	}
	w := world.NewWorld(cfg, defs, worldSeed)

	if *headless > 0 {
		runHeadless(w, cfg.GetTargetFramerate(), *headless)
		return
	}

	watcher, err := config.NewWatcher(filepath.Dir(creaturesPath))
	if err != nil {
		log.Printf("Warning: hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTargetFramerate())

	g := game.NewSandboxGame(cfg, w, creaturesPath, watcher)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// runHeadless steps the world at a fixed rate and logs stats once per simulated second.
func runHeadless(w *world.World, tps int, seconds float64) {
	dt := 1 / float64(tps)
	ticks := int(seconds * float64(tps))

	for i := 1; i <= ticks; i++ {
		w.Step(dt)
		if i%tps == 0 || i == ticks {
			s := w.Stats()
			log.Printf("t=%.1fs creatures=%d walking=%d fleeing=%d spooked=%d",
				w.Elapsed(), s.Creatures, s.Walking, s.Fleeing, s.Disturbed)
		}
	}

	m := w.Monitor().GetCurrentMetrics()
	log.Printf("headless run done: %d ticks, avg step %v", m.Frames, m.AvgFrameTime)
}
