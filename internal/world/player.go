package world

import (
	"github.com/esklarski/SmallCreatureAI/internal/config"
	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/esklarski/SmallCreatureAI/internal/mathutil"
	"github.com/esklarski/SmallCreatureAI/internal/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Player is the keyboard-driven agent that fleeing creatures react to.
type Player struct {
	Transform *creature.Transform

	moveSpeed float64
	rotSpeed  float64
	agent     *physics.Agent
}

func newPlayer(cfg *config.Config, pw *physics.World) *Player {
	p := &Player{
		Transform: creature.NewTransform(mgl64.Vec3{}, 0),
		moveSpeed: cfg.GetMoveSpeed(),
		rotSpeed:  cfg.GetRotSpeed(),
	}
	p.agent = pw.AddAgent(physics.AgentSpec{
		Transform: p.Transform,
		Category:  creature.CategoryPlayer,
		Radius:    cfg.GetPlayerRadius(),
	})
	return p
}

// Move turns by turn (-1..1, positive is counter-clockwise seen from above)
// and walks by forward (-1..1) for dt seconds. Walls are resolved on the
// next world step.
func (p *Player) Move(forward, turn, dt float64) {
	if turn != 0 {
		p.Transform.Rotate(mathutil.WorldUp, turn*p.rotSpeed*dt)
	}
	if forward != 0 {
		p.Transform.Translate(p.Transform.Forward().Mul(forward * p.moveSpeed * dt))
	}
}

func (p *Player) Radius() float64 { return p.agent.Radius }
