package app

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/types"
	"go-artillery/pkg/geom"
)

func newTestGame(t *testing.T, stageID string) *Game {
	t.Helper()
	if err := defs.LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	g, err := NewGame(stageID, 1, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func standUp(g *Game) {
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < config.StandUpDuration+0.05; elapsed += dt {
		g.Scheduler.Update(dt)
	}
}

func TestLoadStageBuildsWorldAndCombatants(t *testing.T) {
	g := newTestGame(t, "STAGE_RAMPARTS")

	if len(g.world.Segments) != 4 || len(g.world.Fields) != 1 {
		t.Fatalf("segments=%d fields=%d, want 4 and 1", len(g.world.Segments), len(g.world.Fields))
	}
	if g.PlayerID == types.NoEntity || g.ECS.Healths[g.PlayerID] == nil {
		t.Fatal("player not spawned")
	}
	if len(g.enemyIDs) != 2 {
		t.Fatalf("enemies = %d, want 2", len(g.enemyIDs))
	}
	for _, id := range g.enemyIDs {
		enemyAI := g.ECS.EnemyAIs[id]
		if enemyAI == nil || enemyAI.TargetID != g.PlayerID {
			t.Fatalf("enemy %d must target the player", id)
		}
	}
}

func TestDifficultyBlendsAimPresets(t *testing.T) {
	g := newTestGame(t, "STAGE_PLAINS")

	def := defs.EnemyLibrary["ENEMY_GRUNT"]
	// Второй противник уровня имеет difficulty 0.45
	settings := g.ECS.EnemyAIs[g.enemyIDs[1]].Settings
	want := def.Easy.Lerp(def.Hard, 0.45)
	if math.Abs(settings.Accuracy-want.Accuracy) > 1e-9 {
		t.Fatalf("accuracy = %f, want %f", settings.Accuracy, want.Accuracy)
	}
}

func TestManualShotTracksProjectileAndLogs(t *testing.T) {
	g := newTestGame(t, "STAGE_PLAINS")
	g.StartGame()

	if id := g.FireManualShot(geom.Vec2{X: 10, Y: 3}); id != types.NoEntity {
		t.Fatal("firing before stand-up must be ignored")
	}
	standUp(g)

	id := g.FireManualShot(geom.Vec2{X: 10, Y: 3})
	if id == types.NoEntity {
		t.Fatal("shot must fire after stand-up")
	}
	if g.ECS.GameState.TrackedProjectile != id {
		t.Fatal("fired projectile must be tracked")
	}
	if g.TurnSystem.CanPlayerFire() {
		t.Fatal("second shot must be blocked while the first flies")
	}
	if len(g.ShotLog()) != 1 {
		t.Fatalf("shot log length = %d, want 1", len(g.ShotLog()))
	}
	if g.ShotLog()[0].Session != g.SessionID() {
		t.Fatal("shot record must carry the session id")
	}
}

func TestChargeSpeedClampsAtMaximum(t *testing.T) {
	g := newTestGame(t, "STAGE_PLAINS")

	// Цель далеко за пределом натяжения: модуль скорости упирается в максимум
	velocity, ok := g.PredictShot(geom.Vec2{X: 500, Y: 100})
	if !ok {
		t.Fatal("prediction failed")
	}
	if math.Abs(velocity.Len()-config.PlayerMaxShotSpeed) > 1e-9 {
		t.Fatalf("speed = %f, want %f", velocity.Len(), config.PlayerMaxShotSpeed)
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, "STAGE_PLAINS")
	g.StartGame()
	standUp(g)
	if g.FireManualShot(geom.Vec2{X: 10, Y: 3}) == types.NoEntity {
		t.Fatal("shot must fire")
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if len(g.ShotLog()) != 0 {
		t.Fatal("restart must clear the shot log")
	}
	gs := g.ECS.GameState
	if !gs.Started || gs.Ended || gs.Phase != component.PlayerTurn {
		t.Fatalf("restart state: started=%v ended=%v phase=%v", gs.Started, gs.Ended, gs.Phase)
	}
	if gs.TrackedProjectile != types.NoEntity {
		t.Fatal("restart must not carry a tracked projectile")
	}
}
