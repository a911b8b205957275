// internal/event/types.go
package event

import (
	"go-artillery/internal/types"
	"go-artillery/pkg/geom"
)

const (
	ProjectileFired     EventType = "ProjectileFired"     // Снаряд выпущен
	ProjectileDestroyed EventType = "ProjectileDestroyed" // Снаряд уничтожен
	HealthChanged       EventType = "HealthChanged"
	Damaged             EventType = "Damaged"
	Died                EventType = "Died" // Сущность погибла
	TurnChanged         EventType = "TurnChanged"
	GameStarted         EventType = "GameStarted"
	GameEnded           EventType = "GameEnded"
	StageCleared        EventType = "StageCleared"
	PlayerDefeated      EventType = "PlayerDefeated"
)

// ProjectileFiredPayload — данные о выпущенном снаряде.
type ProjectileFiredPayload struct {
	ID       types.EntityID
	Team     types.Team
	Origin   geom.Vec2
	Velocity geom.Vec2
}

// ProjectileDestroyedPayload — данные об уничтоженном снаряде.
type ProjectileDestroyedPayload struct {
	ID     types.EntityID
	At     geom.Vec2
	Reason string // "hit", "ground", "arrived", "expired"
}

// HealthChangedPayload — текущее и максимальное здоровье сущности.
type HealthChangedPayload struct {
	ID      types.EntityID
	Current float64
	Max     float64
}

// DamagedPayload — сколько урона получила сущность.
type DamagedPayload struct {
	ID     types.EntityID
	Amount float64
}

// DiedPayload — погибшая сущность и её сторона.
type DiedPayload struct {
	ID   types.EntityID
	Team types.Team
}

// TurnChangedPayload — новая фаза координатора ходов. Конкретный тип фазы
// живёт в component, здесь только строковое имя, чтобы не создавать цикл
// импортов.
type TurnChangedPayload struct {
	Phase string
}
