package physics

import (
	"testing"

	"github.com/esklarski/SmallCreatureAI/internal/creature"
	"github.com/go-gl/mathgl/mgl64"
)

type recordingListener struct {
	collisions []creature.Contact
	triggers   []creature.Contact
}

func (l *recordingListener) OnCollisionEnter(c creature.Contact) {
	l.collisions = append(l.collisions, c)
}

func (l *recordingListener) OnTriggerEnter(c creature.Contact) {
	l.triggers = append(l.triggers, c)
}

func (l *recordingListener) collisionsOf(cat creature.Category) []creature.Contact {
	var out []creature.Contact
	for _, c := range l.collisions {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

func (l *recordingListener) triggersOf(cat creature.Category) []creature.Contact {
	var out []creature.Contact
	for _, c := range l.triggers {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

func testBounds() WorldBounds {
	return WorldBounds{Width: 10, Depth: 10}
}

func addAgent(w *World, pos mgl64.Vec3, cat creature.Category, radius, trigger float64) (*Agent, *recordingListener) {
	l := &recordingListener{}
	a := w.AddAgent(AgentSpec{
		Transform:     creature.NewTransform(pos, 0),
		Category:      cat,
		Radius:        radius,
		TriggerRadius: trigger,
		Listener:      l,
	})
	return a, l
}

func TestAgentTouchingWallGetsBoundaryContact(t *testing.T) {
	w := NewWorld(testBounds())
	a, l := addAgent(w, mgl64.Vec3{4.7, 0.5, 1}, creature.CategoryCreature, 0.5, 0)

	w.Step(1.0 / 60)

	walls := l.collisionsOf(creature.CategoryBoundary)
	if len(walls) == 0 {
		t.Fatal("expected a boundary contact")
	}
	c := walls[0]
	if c.Surface == nil {
		t.Fatal("boundary contact should carry the touched surface")
	}
	p := c.ClosestPoint(a.Transform.Position)
	if p.X() < 4.8 || p.X() > 5.0 {
		t.Errorf("closest wall point x = %f, want near 5", p.X())
	}
	if p.Y() != a.Transform.Position.Y() {
		t.Errorf("closest point height = %f, want agent height", p.Y())
	}
}

func TestStepPreservesHeight(t *testing.T) {
	w := NewWorld(testBounds())
	a, _ := addAgent(w, mgl64.Vec3{0, 1.25, 0}, creature.CategoryCreature, 0.5, 0)

	a.Transform.Position = mgl64.Vec3{1, 1.25, 2}
	w.Step(1.0 / 60)

	got := a.Transform.Position
	if got.Y() != 1.25 {
		t.Errorf("height = %f, want 1.25", got.Y())
	}
	if !got.ApproxEqualThreshold(mgl64.Vec3{1, 1.25, 2}, 1e-6) {
		t.Errorf("free agent ended at %v, want its transform target", got)
	}
}

func TestAgentsCollideWithEachOther(t *testing.T) {
	w := NewWorld(testBounds())
	_, pl := addAgent(w, mgl64.Vec3{0, 0, 0}, creature.CategoryPlayer, 0.5, 0)
	_, bl := addAgent(w, mgl64.Vec3{0.6, 0, 0}, creature.CategoryCreature, 0.5, 0)

	w.Step(1.0 / 60)

	if len(bl.collisionsOf(creature.CategoryPlayer)) != 1 {
		t.Fatalf("creature contacts = %+v, want one player contact", bl.collisions)
	}
	if len(pl.collisionsOf(creature.CategoryCreature)) != 1 {
		t.Fatalf("player contacts = %+v, want one creature contact", pl.collisions)
	}
	if got := bl.collisions[0].Position; got != (mgl64.Vec3{}) {
		t.Errorf("contact position = %v, want player position", got)
	}
	if got := pl.collisions[0].Position; got != (mgl64.Vec3{0.6, 0, 0}) {
		t.Errorf("contact position = %v, want creature position", got)
	}
}

func TestTriggerReportsOnlyToOwner(t *testing.T) {
	w := NewWorld(testBounds())
	_, rabbit := addAgent(w, mgl64.Vec3{0, 0, 0}, creature.CategoryCreature, 0.4, 3)
	_, player := addAgent(w, mgl64.Vec3{2, 0, 0}, creature.CategoryPlayer, 0.5, 0)

	w.Step(1.0 / 60)

	if len(rabbit.triggersOf(creature.CategoryPlayer)) != 1 {
		t.Errorf("rabbit triggers = %+v, want one player trigger", rabbit.triggers)
	}
	if len(rabbit.collisions) != 0 {
		t.Errorf("rabbit collisions = %+v, want none", rabbit.collisions)
	}
	if len(player.collisions)+len(player.triggers) != 0 {
		t.Errorf("player should see nothing from another agent's trigger volume")
	}
}

func TestTriggerVolumesIgnoreEachOther(t *testing.T) {
	w := NewWorld(testBounds())
	_, a := addAgent(w, mgl64.Vec3{-0.8, 0, 0}, creature.CategoryCreature, 0.3, 1)
	_, b := addAgent(w, mgl64.Vec3{0.8, 0, 0}, creature.CategoryCreature, 0.3, 1)

	w.Step(1.0 / 60)

	if len(a.triggers)+len(b.triggers) != 0 {
		t.Errorf("overlapping trigger volumes reported %d/%d events", len(a.triggers), len(b.triggers))
	}
}

func TestRockIsBoundaryAndMeadowIsGround(t *testing.T) {
	bounds := testBounds()
	bounds.Rocks = []Rect{{X: 2, Z: 0, Width: 1, Depth: 1}}
	bounds.Meadows = []Circle{{X: -2, Z: 0, Radius: 1}}
	w := NewWorld(bounds)

	_, nearRock := addAgent(w, mgl64.Vec3{1.2, 0, 0}, creature.CategoryCreature, 0.5, 0)
	_, inMeadow := addAgent(w, mgl64.Vec3{-2, 0, 0}, creature.CategoryCreature, 0.5, 0)

	w.Step(1.0 / 60)

	rocks := nearRock.collisionsOf(creature.CategoryBoundary)
	if len(rocks) != 1 {
		t.Fatalf("rock contacts = %d, want 1", len(rocks))
	}
	if p := rocks[0].Position; p.X() < 1.45 || p.X() > 1.55 {
		t.Errorf("closest rock point = %v, want on the face at x=1.5", p)
	}
	if len(inMeadow.collisionsOf(creature.CategoryGround)) != 1 {
		t.Errorf("meadow contacts = %+v, want one ground contact", inMeadow.collisions)
	}
}

func TestRemoveAgent(t *testing.T) {
	w := NewWorld(testBounds())
	a, _ := addAgent(w, mgl64.Vec3{0, 0, 0}, creature.CategoryCreature, 0.5, 2)
	_, other := addAgent(w, mgl64.Vec3{0.5, 0, 0}, creature.CategoryCreature, 0.5, 0)

	w.RemoveAgent(a)
	w.Step(1.0 / 60)

	if len(w.Agents()) != 1 {
		t.Errorf("agents = %d, want 1", len(w.Agents()))
	}
	if len(other.collisions) != 0 {
		t.Errorf("removed agent still produced contacts: %+v", other.collisions)
	}
}

func TestWorldBoundsHelpers(t *testing.T) {
	b := WorldBounds{Width: 10, Depth: 6}
	if !b.Contains(mgl64.Vec3{4, 0, 2}, 0.5) {
		t.Error("point inside pen reported outside")
	}
	if b.Contains(mgl64.Vec3{4.8, 0, 0}, 0.5) {
		t.Error("point within margin of the wall reported inside")
	}

	r := Rect{X: 0, Z: 0, Width: 2, Depth: 2}
	if !r.Overlaps(mgl64.Vec3{1.3, 0, 0}, 0.5) {
		t.Error("circle touching rock not detected")
	}
	if r.Overlaps(mgl64.Vec3{3, 0, 0}, 0.5) {
		t.Error("distant circle reported overlapping")
	}
}
