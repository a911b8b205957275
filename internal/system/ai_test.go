package system

import (
	"math"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

func newAIFixture(t *testing.T, seed int64) (*entity.ECS, *AISystem, *ProjectileSystem) {
	t.Helper()
	loadDefs(t)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	combat := NewCombatSystem(ecs, dispatcher, testLogger())
	ps := NewProjectileSystem(ecs, dispatcher, combat, testLogger())
	ai := NewAISystem(ecs, ps, utils.NewPRNGService(seed), testLogger())
	return ecs, ai, ps
}

func TestPerfectAccuracyAlwaysHits(t *testing.T) {
	_, ai, _ := newAIFixture(t, 1)
	settings := defs.AimSettings{Accuracy: 1, MinMissDistance: 1, MaxMissDistance: 4}
	settings.Clamp()
	from := geom.Vec2{X: 0, Y: 1}
	target := geom.Vec2{X: 20, Y: 1}
	for i := 0; i < 200; i++ {
		aim := ai.ComputeAimPoint(from, target, settings)
		if aim != target {
			t.Fatalf("accuracy 1.0 produced offset aim %v", aim)
		}
	}
}

func TestZeroAccuracyMissWithinBounds(t *testing.T) {
	_, ai, _ := newAIFixture(t, 2)
	settings := defs.AimSettings{Accuracy: 0, MinMissDistance: 1, MaxMissDistance: 4}
	settings.Clamp()
	from := geom.Vec2{X: 0, Y: 1}
	target := geom.Vec2{X: 20, Y: 1}
	for i := 0; i < 500; i++ {
		aim := ai.ComputeAimPoint(from, target, settings)
		if aim == target {
			t.Fatal("accuracy 0.0 must never hit exactly")
		}
		// Величина промаха по перпендикуляру: severity=1 даёт [minMiss, maxMiss];
		// вертикальный шум добавляет до 25% сверху
		mag := aim.Sub(target).Len()
		if mag < 1*0.75-1e-9 || mag > 4*1.25+1e-9 {
			t.Fatalf("miss magnitude %f outside [0.75, 5]", mag)
		}
	}
}

func TestMissScenarioSeverityBlend(t *testing.T) {
	// accuracy=0.8, minMiss=1, maxMiss=4: величина промаха по перпендикуляру
	// лежит в [lerp(0.5,1,0.2), lerp(1,4,0.2)] = [0.6, 1.6]
	_, ai, _ := newAIFixture(t, 3)
	settings := defs.AimSettings{Accuracy: 0.8, MinMissDistance: 1, MaxMissDistance: 4}
	settings.Clamp()
	from := geom.Vec2{X: 0, Y: 0}
	target := geom.Vec2{X: 10, Y: 0}
	misses := 0
	for i := 0; i < 3000 && misses < 200; i++ {
		aim := ai.ComputeAimPoint(from, target, settings)
		if aim == target {
			continue
		}
		misses++
		// Линия огня вдоль X, перпендикулярная составляющая — по Y.
		// Вертикальный шум тоже ложится на Y, поэтому проверяем поперечную
		// величину с учётом его границ ±25%.
		perp := math.Abs(aim.Y - target.Y)
		if perp < 0.6*0.75-1e-9 || perp > 1.6*1.25+1e-9 {
			t.Fatalf("perpendicular miss %f outside blended bounds", perp)
		}
		if math.Abs(aim.X-target.X) > 1e-9 {
			t.Fatalf("horizontal component %f, miss must be perpendicular", aim.X-target.X)
		}
	}
	if misses == 0 {
		t.Fatal("no misses observed at accuracy 0.8")
	}
}

func TestNextShotDelayFlooredAndSmooth(t *testing.T) {
	ecs, ai, _ := newAIFixture(t, 4)
	id := ecs.NewEntity()
	settings := defs.AimSettings{ShootInterval: 0.1, IntervalJitter: 0.4}
	settings.Clamp()
	ecs.EnemyAIs[id] = &component.EnemyAI{Settings: settings}

	prev := ai.NextShotDelay(id)
	for i := 0; i < 100; i++ {
		d := ai.NextShotDelay(id)
		if d < 0.1 {
			t.Fatalf("delay %f below floor", d)
		}
		if math.Abs(d-prev) > 0.1*0.4 {
			t.Fatalf("delay jumped from %f to %f, noise must be coherent", prev, d)
		}
		prev = d
	}
}

func TestTryFireCurveMode(t *testing.T) {
	ecs, ai, _ := newAIFixture(t, 5)
	player := ecs.NewEntity()
	ecs.Positions[player] = &component.Position{X: 2, Y: 1}
	ecs.Healths[player] = component.NewHealth(100, types.TeamPlayer)

	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: 20, Y: 1}
	ecs.Shooters[enemy] = &component.Shooter{Team: types.TeamEnemy, ProjectileID: "PROJ_LOB", Radius: 0.5}
	ecs.EnemyAIs[enemy] = &component.EnemyAI{
		TargetID: player,
		Settings: defs.EnemyLibrary["ENEMY_GRUNT"].Easy,
	}

	projID, ok := ai.TryFire(enemy)
	if !ok {
		t.Fatal("TryFire failed with valid state")
	}
	proj := ecs.Projectiles[projID]
	if proj.Mode != component.CurveFollowing {
		t.Fatalf("mode = %v, want curve", proj.Mode)
	}
	if proj.Team != types.TeamEnemy {
		t.Fatalf("team = %v, want enemy", proj.Team)
	}
}

func TestTryFirePhysicsOverForceField(t *testing.T) {
	ecs, ai, _ := newAIFixture(t, 6)
	ai.SetWorld(&geom.World{Fields: []geom.Field{
		{Min: geom.Vec2{X: 8, Y: 0}, Max: geom.Vec2{X: 12, Y: 10}},
	}})

	player := ecs.NewEntity()
	ecs.Positions[player] = &component.Position{X: 2, Y: 1}
	ecs.Healths[player] = component.NewHealth(100, types.TeamPlayer)

	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: 20, Y: 1}
	ecs.Shooters[enemy] = &component.Shooter{Team: types.TeamEnemy, ProjectileID: "PROJ_LOB", Radius: 0.5}
	settings := defs.EnemyLibrary["ENEMY_GRUNT"].Easy
	settings.Accuracy = 1 // убираем случайность прицеливания
	ecs.EnemyAIs[enemy] = &component.EnemyAI{TargetID: player, Settings: settings}

	projID, ok := ai.TryFire(enemy)
	if !ok {
		t.Fatal("TryFire failed")
	}
	proj := ecs.Projectiles[projID]
	if proj.Mode != component.ManualPhysics {
		t.Fatal("line of fire crosses force field, mode must be physics")
	}
	vel := ecs.Velocities[projID]
	if vel.X >= 0 {
		t.Fatalf("enemy fires toward -X, vx = %f", vel.X)
	}
	if vel.Y <= 0 {
		t.Fatalf("high-arc shot must go up, vy = %f", vel.Y)
	}
}

func TestTryFireForcePhysicsFlag(t *testing.T) {
	ecs, ai, _ := newAIFixture(t, 7)
	player := ecs.NewEntity()
	ecs.Positions[player] = &component.Position{X: 2, Y: 1}
	ecs.Healths[player] = component.NewHealth(100, types.TeamPlayer)

	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: 20, Y: 1}
	ecs.Shooters[enemy] = &component.Shooter{Team: types.TeamEnemy, ProjectileID: "PROJ_SHELL", Radius: 0.5}
	settings := defs.EnemyLibrary["ENEMY_MORTAR"].Hard
	ecs.EnemyAIs[enemy] = &component.EnemyAI{TargetID: player, Settings: settings, ForcePhysics: true}

	projID, ok := ai.TryFire(enemy)
	if !ok {
		t.Fatal("TryFire failed")
	}
	if ecs.Projectiles[projID].Mode != component.ManualPhysics {
		t.Fatal("force_physics enemy must always fire ballistically")
	}
}

func TestTryFireWithoutTargetSkips(t *testing.T) {
	ecs, ai, _ := newAIFixture(t, 8)
	enemy := ecs.NewEntity()
	ecs.Positions[enemy] = &component.Position{X: 20, Y: 1}
	ecs.Shooters[enemy] = &component.Shooter{Team: types.TeamEnemy, ProjectileID: "PROJ_LOB"}
	ecs.EnemyAIs[enemy] = &component.EnemyAI{TargetID: 999}

	if _, ok := ai.TryFire(enemy); ok {
		t.Fatal("fire without living target must be skipped")
	}
}

func TestApplySettingsClampsInput(t *testing.T) {
	ai := &component.EnemyAI{}
	ai.ApplySettings(defs.AimSettings{Accuracy: 5, ShootInterval: -3, MinMissDistance: -1})
	if ai.Settings.Accuracy != 1 || ai.Settings.ShootInterval != 0.1 || ai.Settings.MinMissDistance != 0 {
		t.Fatalf("settings not clamped: %+v", ai.Settings)
	}
}
