// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64

// NoEntity — нулевой ID, означает "сущности нет".
const NoEntity EntityID = 0

// Team — принадлежность сущности к стороне конфликта.
type Team int

const (
	TeamNeutral Team = iota
	TeamPlayer
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// Hostile сообщает, может ли сторона t наносить урон стороне other.
// Нейтральные объекты уязвимы для всех, свои своим урон не наносят.
func (t Team) Hostile(other Team) bool {
	if t == TeamNeutral || other == TeamNeutral {
		return true
	}
	return t != other
}
