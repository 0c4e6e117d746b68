package world

import (
	"fmt"
	"math/rand"

	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/esklarski/SmallCreatureAI/internal/physics"
)

// Creature is one spawned animal: its transform, controller and visuals.
type Creature struct {
	ID    string
	Key   string
	Name  string
	Kind  creature.BehaviorKind
	Color [3]int

	Transform *creature.Transform
	Behavior  creature.Behavior
	Gait      *Gait
	Alert     *AlertBadge

	agent *physics.Agent
}

func newCreature(n int, key string, def *creature.CreatureDefinition, tr *creature.Transform, rng *rand.Rand) *Creature {
	c := &Creature{
		ID:        fmt.Sprintf("creature_%d", n),
		Key:       key,
		Name:      def.Name,
		Kind:      def.Kind(),
		Color:     def.Color,
		Transform: tr,
		Gait:      &Gait{},
		Alert:     &AlertBadge{},
	}
	if c.Name == "" {
		c.Name = key
	}
	c.Behavior = def.NewBehavior(tr, rng, c.Gait, c.Alert)
	return c
}

// update ticks the behavior and the visuals it drives. It touches only
// this creature's state, so creatures may be updated concurrently.
func (c *Creature) update(dt float64) {
	c.Behavior.Update(dt)
	if c.Kind == creature.BehaviorWander {
		// wanderers have no animator hook; mirror their walk state
		c.Gait.SetForward(c.Behavior.IsWalking())
	}
	c.Gait.advance(dt)
	c.Alert.advance(dt)
}

// Fleer returns the flee controller, if this creature has one.
func (c *Creature) Fleer() (*creature.Fleer, bool) {
	f, ok := c.Behavior.(*creature.Fleer)
	return f, ok
}

func (c *Creature) Disturbed() bool {
	f, ok := c.Fleer()
	return ok && f.Disturbed()
}

func (c *Creature) Fleeing() bool {
	f, ok := c.Fleer()
	return ok && f.IsFleeing()
}

func (c *Creature) Radius() float64 {
	if c.agent == nil {
		return 0
	}
	return c.agent.Radius
}

func (c *Creature) TriggerRadius() float64 {
	if c.agent == nil {
		return 0
	}
	return c.agent.TriggerRadius
}

// strideFrequency is how many stride cycles a moving creature makes per second.
const strideFrequency = 3.0

// Gait is the animator a creature drives: a forward flag and a stride phase
// in [0, 1) that only advances while moving forward.
type Gait struct {
	forward bool
	phase   float64
}

func (g *Gait) SetForward(forward bool) { g.forward = forward }
func (g *Gait) Forward() bool           { return g.forward }
func (g *Gait) Phase() float64          { return g.phase }

func (g *Gait) advance(dt float64) {
	if !g.forward {
		return
	}
	g.phase += dt * strideFrequency
	g.phase -= float64(int(g.phase))
}

// AlertBadge is the "!" shown above a spooked creature.
type AlertBadge struct {
	active   bool
	shownFor float64
}

func (a *AlertBadge) SetActive(active bool) {
	if active && !a.active {
		a.shownFor = 0
	}
	a.active = active
}

func (a *AlertBadge) Active() bool { return a.active }

// ShownFor returns how long the badge has been visible, in seconds.
func (a *AlertBadge) ShownFor() float64 { return a.shownFor }

func (a *AlertBadge) advance(dt float64) {
	if a.active {
		a.shownFor += dt
	}
}
