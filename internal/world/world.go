package world

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/esklarski/SmallCreatureAI/internal/config"
	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/esklarski/SmallCreatureAI/internal/physics"
	"github.com/esklarski/SmallCreatureAI/internal/threading/core"
	"github.com/esklarski/SmallCreatureAI/internal/threading/monitoring"
	"github.com/go-gl/mathgl/mgl64"
)

// World is the pen: static geometry, the player and the creatures.
type World struct {
	config   *config.Config
	defs     *creature.CreatureYAMLConfig
	physics  *physics.World
	monitor  *monitoring.PerformanceMonitor
	rng      *rand.Rand
	seed     int64
	parallel bool

	player    *Player
	creatures []*Creature
	nextID    int
	elapsed   float64
}

// NewWorld builds the pen from cfg and spawns the placement of defs.
// A zero seed picks a time-based one. defs may be nil for an empty pen.
func NewWorld(cfg *config.Config, defs *creature.CreatureYAMLConfig, seed int64) *World {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		config:   cfg,
		physics:  physics.NewWorld(boundsFromConfig(cfg)),
		monitor:  monitoring.NewPerformanceMonitor(),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		parallel: cfg.Simulation.Parallel,
	}
	w.player = newPlayer(cfg, w.physics)
	w.spawnAll(defs)
	return w
}

func boundsFromConfig(cfg *config.Config) physics.WorldBounds {
	bounds := physics.WorldBounds{
		Width: cfg.World.PenWidth,
		Depth: cfg.World.PenDepth,
	}
	for _, r := range cfg.World.Rocks {
		bounds.Rocks = append(bounds.Rocks, physics.Rect{X: r.X, Z: r.Z, Width: r.Width, Depth: r.Depth})
	}
	for _, m := range cfg.World.Meadows {
		bounds.Meadows = append(bounds.Meadows, physics.Circle{X: m.X, Z: m.Z, Radius: m.Radius})
	}
	return bounds
}

// spawnAll places every creature type in sorted key order so a seed always
// reproduces the same pen.
func (w *World) spawnAll(defs *creature.CreatureYAMLConfig) {
	w.defs = defs
	if defs == nil {
		return
	}

	for _, key := range defs.Keys() {
		count := 1
		if rule, ok := defs.Placement[key]; ok {
			count = rule.Count
		}
		for i := 0; i < count; i++ {
			w.spawnCreature(key)
		}
	}
	log.Printf("world: spawned %d creatures (seed %d)", len(w.creatures), w.seed)
}

// spawnCreature finds a free spot inside the pen and adds one creature.
func (w *World) spawnCreature(key string) {
	def, err := w.defs.GetCreatureByKey(key)
	if err != nil {
		log.Printf("world: %v", err)
		return
	}
	body, trigger := def.GetSizeFromConfig()

	pos, ok := w.findSpawnPoint(body, math.Max(body, trigger))
	if !ok {
		log.Printf("world: no free spot for '%s' after %d attempts", key, maxSpawnAttempts)
		return
	}
	yaw := w.rng.Float64()*2*math.Pi - math.Pi
	rng := rand.New(rand.NewSource(w.rng.Int63()))

	w.nextID++
	c := newCreature(w.nextID, key, def, creature.NewTransform(pos, yaw), rng)
	c.agent = w.physics.AddAgent(physics.AgentSpec{
		Transform:     c.Transform,
		Category:      creature.CategoryCreature,
		Radius:        body,
		TriggerRadius: trigger,
		Listener:      c.Behavior,
	})
	w.creatures = append(w.creatures, c)
}

const (
	maxSpawnAttempts = 50
	spawnPlayerGap   = 2.0
)

// findSpawnPoint samples the pen for a spot clear of walls, rocks and other
// creatures, with reach (body or trigger radius) kept off the player.
func (w *World) findSpawnPoint(radius, reach float64) (mgl64.Vec3, bool) {
	bounds := w.physics.Bounds()
	margin := radius + 0.2

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		x := (w.rng.Float64() - 0.5) * (bounds.Width - 2*margin)
		z := (w.rng.Float64() - 0.5) * (bounds.Depth - 2*margin)
		p := mgl64.Vec3{x, 0, z}

		if w.isSuitableLocation(p, radius, reach) {
			return p, true
		}
	}
	return mgl64.Vec3{}, false
}

func (w *World) isSuitableLocation(p mgl64.Vec3, radius, reach float64) bool {
	bounds := w.physics.Bounds()
	if !bounds.Contains(p, radius) {
		return false
	}
	for _, rock := range bounds.Rocks {
		if rock.Overlaps(p, radius) {
			return false
		}
	}
	if w.player != nil && p.Sub(w.player.Transform.Position).Len() < spawnPlayerGap+reach+w.player.Radius() {
		return false
	}
	for _, c := range w.creatures {
		if p.Sub(c.Transform.Position).Len() < radius+c.Radius() {
			return false
		}
	}
	return true
}

// Respawn replaces every creature with a fresh placement from defs.
func (w *World) Respawn(defs *creature.CreatureYAMLConfig) {
	for _, c := range w.creatures {
		w.physics.RemoveAgent(c.agent)
	}
	w.creatures = nil
	w.nextID = 0
	w.spawnAll(defs)
}

// Step advances the simulation by dt seconds: contacts from the previous
// movement are resolved and delivered first, then every behavior ticks.
func (w *World) Step(dt float64) {
	frame := w.monitor.StartFrame()
	defer frame.EndFrame()

	w.monitor.ProfiledFunction(monitoring.SectionPhysics, func() {
		w.physics.Step(dt)
	})

	w.monitor.ProfiledFunction(monitoring.SectionBehaviors, func() {
		tick := func(c *Creature) { c.update(dt) }
		if w.parallel {
			core.ParallelForEach(w.creatures, tick)
		} else {
			for _, c := range w.creatures {
				tick(c)
			}
		}
	})

	w.elapsed += dt
	stats := w.Stats()
	w.monitor.UpdatePopulation(stats.Creatures, stats.Disturbed)
}

// Stats counts creatures by what they are doing.
type Stats struct {
	Creatures int
	Walking   int
	Fleeing   int
	Disturbed int
}

func (w *World) Stats() Stats {
	s := Stats{Creatures: len(w.creatures)}
	for _, c := range w.creatures {
		if c.Behavior.IsWalking() {
			s.Walking++
		}
		if c.Fleeing() {
			s.Fleeing++
		}
		if c.Disturbed() {
			s.Disturbed++
		}
	}
	return s
}

func (w *World) Creatures() []*Creature                    { return w.creatures }
func (w *World) Player() *Player                           { return w.player }
func (w *World) Elapsed() float64                          { return w.elapsed }
func (w *World) Seed() int64                               { return w.seed }
func (w *World) Bounds() physics.WorldBounds               { return w.physics.Bounds() }
func (w *World) Monitor() *monitoring.PerformanceMonitor   { return w.monitor }
func (w *World) Definitions() *creature.CreatureYAMLConfig { return w.defs }
