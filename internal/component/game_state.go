// internal/component/game_state.go
package component

import "go-artillery/internal/types"

// TurnPhase — фаза координатора ходов.
type TurnPhase int

const (
	PlayerTurn TurnPhase = iota
	EnemyTurn
	TurnTransition
	GameOver
	StageCleared
)

func (p TurnPhase) String() string {
	switch p {
	case PlayerTurn:
		return "PlayerTurn"
	case EnemyTurn:
		return "EnemyTurn"
	case TurnTransition:
		return "TurnTransition"
	case GameOver:
		return "GameOver"
	case StageCleared:
		return "StageCleared"
	default:
		return "Unknown"
	}
}

// GameState — компонент состояния партии. Инвариант: отслеживается
// не более одного снаряда одновременно.
type GameState struct {
	Phase             TurnPhase
	Started           bool
	Ended             bool
	TrackedProjectile types.EntityID // NoEntity, если снаряд не в полёте
	EnemiesLeft       int
	PlayerDefeated    bool
}
