// internal/component/health.go
package component

import "go-artillery/internal/types"

// Health — компонент здоровья. Инварианты: Current всегда в [0, Max];
// после смерти урон игнорируется до явного Reset; своя сторона
// (одинаковый ненейтральный Team) урона не наносит.
type Health struct {
	Current float64
	Max     float64
	Team    types.Team
	Dead    bool
}

// NewHealth создает компонент с полным здоровьем.
func NewHealth(max float64, team types.Team) *Health {
	return &Health{Current: max, Max: max, Team: team}
}

// Reset возвращает сущность к жизни с полным здоровьем.
func (h *Health) Reset() {
	h.Current = h.Max
	h.Dead = false
}
