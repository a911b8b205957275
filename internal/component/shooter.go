// internal/component/shooter.go
package component

import (
	"go-artillery/internal/defs"
	"go-artillery/internal/types"
	"go-artillery/pkg/geom"
)

// Shooter — общая часть стрелка (игрока и противников): сторона,
// тип снаряда и смещение дула относительно позиции.
type Shooter struct {
	Team         types.Team
	ProjectileID string
	MuzzleOffset geom.Vec2
	Radius       float64 // радиус тела для коллизий со снарядами
	Standing     bool    // подъём завершён, стрельба разрешена
}

// EnemyAI — состояние модели прицеливания ИИ-стрелка.
type EnemyAI struct {
	DefID    string
	Settings defs.AimSettings
	TargetID types.EntityID

	ForcePhysics bool
	NoiseCursor  float64 // позиция в когерентном шуме для модуляции темпа
}

// ApplySettings заменяет настройки прицеливания, предварительно
// зажав их в допустимые диапазоны.
func (ai *EnemyAI) ApplySettings(s defs.AimSettings) {
	s.Clamp()
	ai.Settings = s
}
