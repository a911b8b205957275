// internal/system/combat.go
package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
)

// CombatSystem владеет мутациями здоровья: урон, лечение, смерть.
// Вся остальная игра меняет Health только через него.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// ApplyDamage наносит урон сущности от имени стороны attacker.
// Свои по своим не попадают, мёртвые урон не получают; здоровье
// не опускается ниже нуля. Возвращает true, если урон был нанесён.
func (s *CombatSystem) ApplyDamage(targetID types.EntityID, amount float64, attacker types.Team) bool {
	health, ok := s.ecs.Healths[targetID]
	if !ok || health.Dead || amount <= 0 {
		return false
	}
	if !attacker.Hostile(health.Team) {
		return false
	}

	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.Damaged, Data: event.DamagedPayload{
		ID: targetID, Amount: amount,
	}})
	s.dispatchHealthChanged(targetID, health)
	s.spawnDamageText(targetID, amount)

	if health.Current == 0 {
		health.Dead = true
		s.logger.Info("entity died", "id", targetID, "team", health.Team)
		s.eventDispatcher.Dispatch(event.Event{Type: event.Died, Data: event.DiedPayload{
			ID: targetID, Team: health.Team,
		}})
	}
	return true
}

// Heal восстанавливает здоровье живой сущности, не превышая максимум.
func (s *CombatSystem) Heal(targetID types.EntityID, amount float64) {
	health, ok := s.ecs.Healths[targetID]
	if !ok || health.Dead || amount <= 0 {
		return
	}
	health.Current += amount
	if health.Current > health.Max {
		health.Current = health.Max
	}
	s.dispatchHealthChanged(targetID, health)
}

// ResetHealth возвращает сущность к жизни с полным здоровьем.
func (s *CombatSystem) ResetHealth(targetID types.EntityID) {
	health, ok := s.ecs.Healths[targetID]
	if !ok {
		return
	}
	health.Reset()
	s.dispatchHealthChanged(targetID, health)
}

func (s *CombatSystem) dispatchHealthChanged(id types.EntityID, health *component.Health) {
	s.eventDispatcher.Dispatch(event.Event{Type: event.HealthChanged, Data: event.HealthChangedPayload{
		ID: id, Current: health.Current, Max: health.Max,
	}})
}

// spawnDamageText создает всплывающее число урона над целью.
func (s *CombatSystem) spawnDamageText(targetID types.EntityID, amount float64) {
	pos, ok := s.ecs.Positions[targetID]
	if !ok {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y + 1}
	s.ecs.FloatingTexts[id] = &component.FloatingText{
		Text:     fmt.Sprintf("-%.0f", amount),
		Lifetime: config.FloatingTextLife,
		Color:    config.DamageTextColor,
	}
}
