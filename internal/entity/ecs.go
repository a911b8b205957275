// internal/entity/ecs.go
package entity

import (
	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Projectiles   map[types.EntityID]*component.Projectile
	Shooters      map[types.EntityID]*component.Shooter
	EnemyAIs      map[types.EntityID]*component.EnemyAI
	Trails        map[types.EntityID]*component.Trail
	FloatingTexts map[types.EntityID]*component.FloatingText
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Shooters:      make(map[types.EntityID]*component.Shooter),
		EnemyAIs:      make(map[types.EntityID]*component.EnemyAI),
		Trails:        make(map[types.EntityID]*component.Trail),
		FloatingTexts: make(map[types.EntityID]*component.FloatingText),
		GameState:     &component.GameState{Phase: component.PlayerTurn},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Shooters, id)
	delete(ecs.EnemyAIs, id)
	delete(ecs.Trails, id)
	delete(ecs.FloatingTexts, id)
}
