// internal/system/turn.go
package system

import (
	"github.com/charmbracelet/log"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
)

// TurnSystem — координатор ходов. Последовательность:
// PlayerTurn → (выстрел) → сопровождение снаряда → (снаряд уничтожен) →
// TurnTransition → EnemyTurn → ... и обратно. Одновременно сопровождается
// не более одного снаряда; смерть игрока даёт GameOver, смерть последнего
// противника — StageCleared.
//
// Все методы — защитные no-op до StartGame и после конца партии.
// Отложенные действия (подъём стрелка, задержка перехода, пауза перед
// выстрелом ИИ) идут через Scheduler с семантикой cancel-and-replace.
type TurnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *Scheduler
	aiSystem        *AISystem
	logger          *log.Logger

	playerID      types.EntityID
	enemyIDs      []types.EntityID // порядок ходов противников
	nextEnemyIdx  int
	activeEnemyID types.EntityID
}

func NewTurnSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, scheduler *Scheduler, aiSystem *AISystem, logger *log.Logger) *TurnSystem {
	ts := &TurnSystem{
		ecs:             ecs,
		eventDispatcher: dispatcher,
		scheduler:       scheduler,
		aiSystem:        aiSystem,
		logger:          logger,
		playerID:        types.NoEntity,
		activeEnemyID:   types.NoEntity,
	}
	dispatcher.Subscribe(ts, event.ProjectileDestroyed, event.Died)
	return ts
}

// SetCombatants задаёт стрелка игрока и очередь противников.
// Вызывается при загрузке уровня, до StartGame.
func (ts *TurnSystem) SetCombatants(playerID types.EntityID, enemyIDs []types.EntityID) {
	ts.playerID = playerID
	ts.enemyIDs = append(ts.enemyIDs[:0], enemyIDs...)
	ts.nextEnemyIdx = 0
	ts.activeEnemyID = types.NoEntity
}

// StartGame запускает партию. Повторный вызов в уже идущей партии —
// no-op (идемпотентный guard, не ошибка).
func (ts *TurnSystem) StartGame() {
	gs := ts.ecs.GameState
	if gs.Started && !gs.Ended {
		return
	}
	gs.Started = true
	gs.Ended = false
	gs.PlayerDefeated = false
	gs.TrackedProjectile = types.NoEntity
	gs.EnemiesLeft = ts.countLivingEnemies()
	ts.nextEnemyIdx = 0
	ts.activeEnemyID = types.NoEntity
	ts.scheduler.Reset()

	ts.logger.Info("game started", "enemies", gs.EnemiesLeft)
	ts.eventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
	ts.enterPlayerTurn()
}

// CanPlayerFire сообщает, разрешён ли сейчас ручной выстрел: свой ход,
// подъём завершён, в полёте нет сопровождаемого снаряда. Ввод, пришедший
// до завершения подъёма, игнорируется, а не ставится в очередь.
func (ts *TurnSystem) CanPlayerFire() bool {
	gs := ts.ecs.GameState
	if !gs.Started || gs.Ended || gs.Phase != component.PlayerTurn {
		return false
	}
	if gs.TrackedProjectile != types.NoEntity {
		return false
	}
	shooter := ts.ecs.Shooters[ts.playerID]
	return shooter != nil && shooter.Standing
}

// TrackProjectile начинает сопровождение снаряда. Предыдущее
// сопровождение неявно снимается: события старого снаряда больше
// не влияют на координатора.
func (ts *TurnSystem) TrackProjectile(id types.EntityID) {
	gs := ts.ecs.GameState
	if !gs.Started || gs.Ended {
		return
	}
	if gs.TrackedProjectile != types.NoEntity && gs.TrackedProjectile != id {
		ts.logger.Warn("replacing tracked projectile", "old", gs.TrackedProjectile, "new", id)
	}
	gs.TrackedProjectile = id
}

// OnEvent реализует event.Listener.
func (ts *TurnSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileDestroyed:
		payload, ok := e.Data.(event.ProjectileDestroyedPayload)
		if ok {
			ts.onProjectileDestroyed(payload.ID)
		}
	case event.Died:
		payload, ok := e.Data.(event.DiedPayload)
		if ok {
			ts.onDied(payload)
		}
	}
}

func (ts *TurnSystem) onProjectileDestroyed(id types.EntityID) {
	gs := ts.ecs.GameState
	if !gs.Started || id != gs.TrackedProjectile {
		return
	}
	gs.TrackedProjectile = types.NoEntity
	if gs.Ended {
		return
	}
	switch gs.Phase {
	case component.PlayerTurn:
		ts.beginTransition(component.EnemyTurn)
	case component.EnemyTurn:
		ts.beginTransition(component.PlayerTurn)
	}
}

func (ts *TurnSystem) onDied(payload event.DiedPayload) {
	gs := ts.ecs.GameState
	if !gs.Started || gs.Ended {
		return
	}
	switch payload.Team {
	case types.TeamPlayer:
		gs.PlayerDefeated = true
		ts.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDefeated, Data: payload})
		ts.endGame(component.GameOver)
	case types.TeamEnemy:
		gs.EnemiesLeft--
		ts.logger.Info("enemy down", "id", payload.ID, "left", gs.EnemiesLeft)
		if gs.EnemiesLeft <= 0 {
			ts.eventDispatcher.Dispatch(event.Event{Type: event.StageCleared})
			ts.endGame(component.StageCleared)
		}
	}
}

func (ts *TurnSystem) enterPlayerTurn() {
	ts.setPhase(component.PlayerTurn)
	ts.activeEnemyID = types.NoEntity
	shooter := ts.ecs.Shooters[ts.playerID]
	if shooter == nil {
		// Сторона без стрелка теряет возможность действовать,
		// но цикл не падает
		ts.logger.Warn("player turn without a player shooter")
		return
	}
	shooter.Standing = false
	ts.scheduler.Schedule(ts.playerID, TimerStandUp, config.StandUpDuration, func() {
		if ts.ecs.GameState.Phase == component.PlayerTurn {
			shooter.Standing = true
		}
	})
}

func (ts *TurnSystem) enterEnemyTurn() {
	enemyID := ts.pickNextEnemy()
	if enemyID == types.NoEntity {
		// Живых противников не осталось, а событие смерти последнего уже
		// обработано раньше; сюда попадаем только в вырожденных раскладках
		ts.beginTransition(component.PlayerTurn)
		return
	}
	ts.setPhase(component.EnemyTurn)
	ts.activeEnemyID = enemyID

	// Страховка от зависания: если ИИ так и не выстрелил, ход
	// возвращается игроку
	ts.scheduler.Schedule(enemyID, TimerTurnGuard, config.EnemyTurnTimeout, func() {
		gs := ts.ecs.GameState
		if gs.Ended || gs.Phase != component.EnemyTurn || gs.TrackedProjectile != types.NoEntity {
			return
		}
		ts.logger.Warn("enemy turn timed out without a shot", "id", enemyID)
		ts.scheduler.CancelAll(enemyID)
		ts.beginTransition(component.PlayerTurn)
	})

	shooter := ts.ecs.Shooters[enemyID]
	if shooter == nil {
		return // сработает страховочный таймер
	}
	shooter.Standing = false
	ts.scheduler.Schedule(enemyID, TimerStandUp, config.StandUpDuration, func() {
		if ts.ecs.GameState.Phase != component.EnemyTurn {
			return
		}
		shooter.Standing = true
		delay := config.EnemyPreFireDelay + ts.aiSystem.NextShotDelay(enemyID)
		ts.scheduler.Schedule(enemyID, TimerEnemyFire, delay, func() {
			ts.enemyFire(enemyID)
		})
	})
}

func (ts *TurnSystem) enemyFire(enemyID types.EntityID) {
	gs := ts.ecs.GameState
	if gs.Ended || gs.Phase != component.EnemyTurn || gs.TrackedProjectile != types.NoEntity {
		return
	}
	projID, ok := ts.aiSystem.TryFire(enemyID)
	if !ok {
		// Выстрел не состоялся: ход вернёт страховочный таймер
		return
	}
	ts.scheduler.Cancel(enemyID, TimerTurnGuard)
	ts.TrackProjectile(projID)
}

func (ts *TurnSystem) beginTransition(next component.TurnPhase) {
	ts.setPhase(component.TurnTransition)
	ts.scheduler.Schedule(types.NoEntity, TimerTransition, config.TurnTransitionTime, func() {
		if ts.ecs.GameState.Ended {
			return
		}
		switch next {
		case component.EnemyTurn:
			ts.enterEnemyTurn()
		default:
			ts.enterPlayerTurn()
		}
	})
}

func (ts *TurnSystem) endGame(final component.TurnPhase) {
	gs := ts.ecs.GameState
	if gs.Ended {
		return
	}
	gs.Ended = true
	ts.scheduler.Cancel(types.NoEntity, TimerTransition)
	ts.scheduler.CancelAll(ts.playerID)
	for _, id := range ts.enemyIDs {
		ts.scheduler.CancelAll(id)
	}
	ts.setPhase(final)
	ts.logger.Info("game ended", "outcome", final.String())
	ts.eventDispatcher.Dispatch(event.Event{Type: event.GameEnded, Data: event.TurnChangedPayload{Phase: final.String()}})
}

func (ts *TurnSystem) setPhase(phase component.TurnPhase) {
	gs := ts.ecs.GameState
	gs.Phase = phase
	ts.eventDispatcher.Dispatch(event.Event{
		Type: event.TurnChanged,
		Data: event.TurnChangedPayload{Phase: phase.String()},
	})
}

// ActiveEnemy возвращает противника, чей сейчас ход, либо NoEntity.
func (ts *TurnSystem) ActiveEnemy() types.EntityID {
	if ts.ecs.GameState.Phase != component.EnemyTurn {
		return types.NoEntity
	}
	return ts.activeEnemyID
}

// pickNextEnemy выбирает следующего живого противника по кругу.
func (ts *TurnSystem) pickNextEnemy() types.EntityID {
	n := len(ts.enemyIDs)
	for i := 0; i < n; i++ {
		id := ts.enemyIDs[(ts.nextEnemyIdx+i)%n]
		health := ts.ecs.Healths[id]
		if health != nil && !health.Dead {
			ts.nextEnemyIdx = (ts.nextEnemyIdx + i + 1) % n
			return id
		}
	}
	return types.NoEntity
}

func (ts *TurnSystem) countLivingEnemies() int {
	alive := 0
	for _, id := range ts.enemyIDs {
		if health := ts.ecs.Healths[id]; health != nil && !health.Dead {
			alive++
		}
	}
	return alive
}
