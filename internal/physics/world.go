package physics

import (
	"math"

	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeAgent cp.CollisionType = iota + 1
	collisionTypeTrigger
	collisionTypeBoundary
	collisionTypeGround
)

const wallThickness = 0.1

// Listener receives contact events for an agent. creature.Behavior satisfies it.
type Listener interface {
	OnCollisionEnter(c creature.Contact)
	OnTriggerEnter(c creature.Contact)
}

// AgentSpec describes a moving body to add to the world.
type AgentSpec struct {
	Transform     *creature.Transform
	Category      creature.Category
	Radius        float64
	TriggerRadius float64 // zero for no trigger volume
	Listener      Listener
}

// Agent is a moving body whose position follows its transform.
type Agent struct {
	Transform *creature.Transform
	Category  creature.Category

	Radius        float64
	TriggerRadius float64

	listener Listener
	body     *cp.Body
	shape    *cp.Shape
	trigger  *cp.Shape
}

// pendingContact is a begin event recorded during a step.
type pendingContact struct {
	to      *Agent
	trigger bool
	contact creature.Contact
}

// World owns the Chipmunk space for the pen and its agents.
type World struct {
	bounds WorldBounds
	space  *cp.Space

	agents      []*Agent
	agentShapes map[*cp.Shape]*Agent
	triggers    map[*cp.Shape]*Agent
	ground      map[*cp.Shape]bool

	pending []pendingContact
}

// NewWorld creates a gravity-free space with the pen walls, rocks and meadows.
func NewWorld(bounds WorldBounds) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	w := &World{
		bounds:      bounds,
		space:       space,
		agentShapes: make(map[*cp.Shape]*Agent),
		triggers:    make(map[*cp.Shape]*Agent),
		ground:      make(map[*cp.Shape]bool),
	}
	w.buildStaticShapes()
	w.setupHandlers()
	return w
}

// Bounds returns the static geometry the world was built from.
func (w *World) Bounds() WorldBounds {
	return w.bounds
}

func (w *World) buildStaticShapes() {
	hw, hd := w.bounds.Width/2, w.bounds.Depth/2
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: -hw, Y: -hd}, b: cp.Vector{X: hw, Y: -hd}},
		{a: cp.Vector{X: -hw, Y: hd}, b: cp.Vector{X: hw, Y: hd}},
		{a: cp.Vector{X: -hw, Y: -hd}, b: cp.Vector{X: -hw, Y: hd}},
		{a: cp.Vector{X: hw, Y: -hd}, b: cp.Vector{X: hw, Y: hd}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, wallThickness)
		shape.SetCollisionType(collisionTypeBoundary)
		w.space.AddShape(shape)
	}

	for _, rock := range w.bounds.Rocks {
		shape := cp.NewBox2(w.space.StaticBody, rock.bb(), 0)
		shape.SetCollisionType(collisionTypeBoundary)
		w.space.AddShape(shape)
	}

	for _, meadow := range w.bounds.Meadows {
		shape := cp.NewCircle(w.space.StaticBody, meadow.Radius, cp.Vector{X: meadow.X, Y: meadow.Z})
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeGround)
		w.space.AddShape(shape)
		w.ground[shape] = true
	}
}

// setupHandlers records begin events; they are delivered after the step so
// listeners never mutate the space mid-step.
func (w *World) setupHandlers() {
	pairs := []struct {
		a, b cp.CollisionType
	}{
		{collisionTypeAgent, collisionTypeAgent},
		{collisionTypeAgent, collisionTypeBoundary},
		{collisionTypeAgent, collisionTypeGround},
		{collisionTypeTrigger, collisionTypeAgent},
		{collisionTypeTrigger, collisionTypeBoundary},
		{collisionTypeTrigger, collisionTypeGround},
	}
	for _, pair := range pairs {
		handler := w.space.NewCollisionHandler(pair.a, pair.b)
		handler.UserData = w
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			world.record(shapeA, shapeB)
			world.record(shapeB, shapeA)
			return true
		}
	}
}

// record queues the event seen by the owner of self, if any.
// Trigger volumes never report each other, and only report to their owner.
func (w *World) record(self, other *cp.Shape) {
	if _, isTrigger := w.triggers[other]; isTrigger {
		return
	}

	if owner, ok := w.triggers[self]; ok {
		if other.Body() == owner.body {
			return
		}
		w.pending = append(w.pending, pendingContact{
			to:      owner,
			trigger: true,
			contact: w.contactFor(owner, other),
		})
		return
	}

	if owner, ok := w.agentShapes[self]; ok {
		w.pending = append(w.pending, pendingContact{
			to:      owner,
			contact: w.contactFor(owner, other),
		})
	}
}

// contactFor builds the Contact that owner sees when touching other.
func (w *World) contactFor(owner *Agent, other *cp.Shape) creature.Contact {
	if agent, ok := w.agentShapes[other]; ok {
		return creature.Contact{
			Category: agent.Category,
			Position: agent.Transform.Position,
		}
	}

	surface := shapeSurface{shape: other}
	category := creature.CategoryBoundary
	if w.ground[other] {
		category = creature.CategoryGround
	}
	return creature.Contact{
		Category: category,
		Position: surface.ClosestPoint(owner.Transform.Position),
		Surface:  surface,
	}
}

// AddAgent adds a circular body at the transform's position.
func (w *World) AddAgent(spec AgentSpec) *Agent {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(toPlane(spec.Transform.Position))

	shape := cp.NewCircle(body, spec.Radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeAgent)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	agent := &Agent{
		Transform:     spec.Transform,
		Category:      spec.Category,
		Radius:        spec.Radius,
		TriggerRadius: spec.TriggerRadius,
		listener:      spec.Listener,
		body:          body,
		shape:         shape,
	}
	w.agentShapes[shape] = agent

	if spec.TriggerRadius > 0 {
		trigger := cp.NewCircle(body, spec.TriggerRadius, cp.Vector{})
		trigger.SetSensor(true)
		trigger.SetCollisionType(collisionTypeTrigger)
		w.space.AddShape(trigger)
		agent.trigger = trigger
		w.triggers[trigger] = agent
	}

	w.agents = append(w.agents, agent)
	return agent
}

// RemoveAgent takes the agent's body and shapes out of the space.
func (w *World) RemoveAgent(a *Agent) {
	if a == nil {
		return
	}
	for i, existing := range w.agents {
		if existing == a {
			w.agents = append(w.agents[:i], w.agents[i+1:]...)
			break
		}
	}
	if a.trigger != nil {
		delete(w.triggers, a.trigger)
		w.space.RemoveShape(a.trigger)
	}
	delete(w.agentShapes, a.shape)
	w.space.RemoveShape(a.shape)
	w.space.RemoveBody(a.body)
}

// Agents returns the agents in insertion order.
func (w *World) Agents() []*Agent {
	return w.agents
}

// Step moves every body toward its transform, resolves overlaps, writes the
// result back and then delivers the begin events of this step in order.
func (w *World) Step(dt float64) {
	for _, a := range w.agents {
		target := toPlane(a.Transform.Position)
		if dt <= 0 {
			a.body.SetPosition(target)
			continue
		}
		a.body.SetVelocityVector(target.Sub(a.body.Position()).Mult(1 / dt))
	}

	w.pending = nil
	if dt > 0 {
		w.space.Step(dt)
	}

	for _, a := range w.agents {
		a.body.SetVelocity(0, 0)
		a.Transform.Position = fromPlane(a.body.Position(), a.Transform.Position.Y())
	}

	delivered := w.pending
	w.pending = nil
	for _, p := range delivered {
		if p.to.listener == nil {
			continue
		}
		if p.trigger {
			p.to.listener.OnTriggerEnter(p.contact)
		} else {
			p.to.listener.OnCollisionEnter(p.contact)
		}
	}
}
