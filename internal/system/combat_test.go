package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

type recordingListener struct {
	events []event.Event
}

func (r *recordingListener) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newCombatFixture() (*entity.ECS, *event.Dispatcher, *CombatSystem, *recordingListener) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	combat := NewCombatSystem(ecs, dispatcher, testLogger())
	rec := &recordingListener{}
	dispatcher.Subscribe(rec, event.Damaged, event.HealthChanged, event.Died)
	return ecs, dispatcher, combat, rec
}

func spawnTarget(ecs *entity.ECS, max float64, team types.Team) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 0, Y: 0}
	ecs.Healths[id] = component.NewHealth(max, team)
	return id
}

func TestHealthStaysClamped(t *testing.T) {
	ecs, _, combat, _ := newCombatFixture()
	id := spawnTarget(ecs, 50, types.TeamEnemy)

	combat.ApplyDamage(id, 30, types.TeamPlayer)
	if ecs.Healths[id].Current != 20 {
		t.Fatalf("health = %f, want 20", ecs.Healths[id].Current)
	}
	combat.ApplyDamage(id, 100, types.TeamPlayer)
	if ecs.Healths[id].Current != 0 {
		t.Fatalf("health = %f, want clamp 0", ecs.Healths[id].Current)
	}
	combat.Heal(id, 30) // мёртвого лечить нельзя
	if ecs.Healths[id].Current != 0 {
		t.Fatalf("dead entity healed to %f", ecs.Healths[id].Current)
	}

	combat.ResetHealth(id)
	combat.Heal(id, 500)
	if ecs.Healths[id].Current != 50 {
		t.Fatalf("heal overflow: %f, want 50", ecs.Healths[id].Current)
	}
}

func TestDeadEntityIgnoresDamageUntilReset(t *testing.T) {
	ecs, _, combat, rec := newCombatFixture()
	id := spawnTarget(ecs, 10, types.TeamEnemy)

	combat.ApplyDamage(id, 10, types.TeamPlayer)
	if !ecs.Healths[id].Dead {
		t.Fatal("entity must be dead")
	}
	if rec.count(event.Died) != 1 {
		t.Fatalf("Died events = %d, want 1", rec.count(event.Died))
	}

	if combat.ApplyDamage(id, 10, types.TeamPlayer) {
		t.Fatal("damage to dead entity must be a no-op")
	}
	if rec.count(event.Died) != 1 {
		t.Fatal("second Died event emitted")
	}

	combat.ResetHealth(id)
	if ecs.Healths[id].Dead || ecs.Healths[id].Current != 10 {
		t.Fatalf("reset failed: dead=%v current=%f", ecs.Healths[id].Dead, ecs.Healths[id].Current)
	}
	if !combat.ApplyDamage(id, 3, types.TeamPlayer) {
		t.Fatal("damage after reset must apply")
	}
}

func TestFriendlyFireImmunity(t *testing.T) {
	ecs, _, combat, rec := newCombatFixture()
	enemy := spawnTarget(ecs, 50, types.TeamEnemy)
	neutral := spawnTarget(ecs, 50, types.TeamNeutral)

	if combat.ApplyDamage(enemy, 10, types.TeamEnemy) {
		t.Fatal("same team damage must be a no-op")
	}
	if rec.count(event.Damaged) != 0 {
		t.Fatal("friendly fire emitted Damaged event")
	}
	// Нейтральные объекты уязвимы для всех
	if !combat.ApplyDamage(neutral, 10, types.TeamEnemy) {
		t.Fatal("neutral target must take damage")
	}
}

func TestDamageEmitsEventsAndFloatingText(t *testing.T) {
	ecs, _, combat, rec := newCombatFixture()
	id := spawnTarget(ecs, 50, types.TeamPlayer)

	combat.ApplyDamage(id, 7, types.TeamEnemy)
	if rec.count(event.Damaged) != 1 || rec.count(event.HealthChanged) != 1 {
		t.Fatalf("events damaged=%d healthChanged=%d, want 1/1",
			rec.count(event.Damaged), rec.count(event.HealthChanged))
	}
	if len(ecs.FloatingTexts) != 1 {
		t.Fatalf("floating texts = %d, want 1", len(ecs.FloatingTexts))
	}
	for _, ft := range ecs.FloatingTexts {
		if ft.Text != "-7" {
			t.Fatalf("floating text = %q, want -7", ft.Text)
		}
	}
}
