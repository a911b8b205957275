package system

import (
	"math"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/pkg/geom"
)

func TestCameraFollowsTrackedProjectileOverFocus(t *testing.T) {
	ecs := entity.NewECS()
	cam := NewCameraSystem(ecs)

	focus := ecs.NewEntity()
	ecs.Positions[focus] = &component.Position{X: 0, Y: 0}
	cam.SetFocus(focus)
	cam.SnapTo(geom.Vec2{X: 0, Y: 0})

	proj := ecs.NewEntity()
	ecs.Positions[proj] = &component.Position{X: 10, Y: 5}
	ecs.GameState.TrackedProjectile = proj

	cam.Update(0.1)
	c := cam.Center()
	if c.X <= 0 || c.Y <= 0 {
		t.Fatalf("camera must move toward the projectile, center = %v", c)
	}
	if c.X >= 10 || c.Y >= 5 {
		t.Fatalf("smoothing must not overshoot in one step, center = %v", c)
	}
}

func TestCameraConvergesOnStaticTarget(t *testing.T) {
	ecs := entity.NewECS()
	cam := NewCameraSystem(ecs)
	focus := ecs.NewEntity()
	ecs.Positions[focus] = &component.Position{X: 7, Y: -2}
	cam.SetFocus(focus)

	for i := 0; i < 600; i++ {
		cam.Update(1.0 / 60)
	}
	c := cam.Center()
	if math.Abs(c.X-7) > 0.01 || math.Abs(c.Y+2) > 0.01 {
		t.Fatalf("camera did not converge, center = %v", c)
	}
}

func TestFloatingTextExpires(t *testing.T) {
	ecs := entity.NewECS()
	fts := NewFloatingTextSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1, Y: 1}
	ecs.FloatingTexts[id] = &component.FloatingText{Text: "-25", Lifetime: 0.3}

	fts.Update(0.1)
	if ecs.FloatingTexts[id] == nil {
		t.Fatal("text removed too early")
	}
	if ecs.Positions[id].Y <= 1 {
		t.Fatal("text must drift upward")
	}
	fts.Update(0.3)
	if ecs.FloatingTexts[id] != nil || ecs.Positions[id] != nil {
		t.Fatal("expired text must be removed with its entity")
	}
}
