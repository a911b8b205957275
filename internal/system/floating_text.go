// internal/system/floating_text.go
package system

import (
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/types"
)

// FloatingTextSystem управляет всплывающими числами урона: возраст,
// подъём и удаление по истечении времени жизни.
type FloatingTextSystem struct {
	ecs *entity.ECS
}

func NewFloatingTextSystem(ecs *entity.ECS) *FloatingTextSystem {
	return &FloatingTextSystem{ecs: ecs}
}

// Update старит тексты и поднимает их вверх; отжившие удаляются
// вместе с сущностью.
func (s *FloatingTextSystem) Update(deltaTime float64) {
	var expired []types.EntityID
	for id, text := range s.ecs.FloatingTexts {
		text.Age += deltaTime
		if text.Age >= text.Lifetime {
			expired = append(expired, id)
			continue
		}
		if pos := s.ecs.Positions[id]; pos != nil {
			pos.Y += config.FloatingTextSpeed / config.PixelsPerUnit * deltaTime
		}
	}
	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}
