// internal/system/camera.go
package system

import (
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/types"
	"go-artillery/pkg/geom"
)

// CameraSystem — плавное сопровождение камерой: сопровождаемый снаряд,
// если он в полёте, иначе сущность-фокус (чей сейчас ход).
type CameraSystem struct {
	ecs    *entity.ECS
	center geom.Vec2
	focus  types.EntityID
}

func NewCameraSystem(ecs *entity.ECS) *CameraSystem {
	return &CameraSystem{ecs: ecs, focus: types.NoEntity}
}

// SetFocus задаёт сущность, на которой камера держится между выстрелами.
func (s *CameraSystem) SetFocus(id types.EntityID) {
	s.focus = id
}

// SnapTo мгновенно переносит камеру (смена уровня, начало партии).
func (s *CameraSystem) SnapTo(target geom.Vec2) {
	s.center = target
}

// Center возвращает текущий центр камеры в мировых координатах.
func (s *CameraSystem) Center() geom.Vec2 {
	return s.center
}

// Update подтягивает центр к цели экспоненциальным сглаживанием.
func (s *CameraSystem) Update(deltaTime float64) {
	target, ok := s.target()
	if !ok {
		return
	}
	k := config.CameraFollowSpeed * deltaTime
	if k > 1 {
		k = 1
	}
	s.center = s.center.Add(target.Sub(s.center).Scale(k))
}

func (s *CameraSystem) target() (geom.Vec2, bool) {
	if tracked := s.ecs.GameState.TrackedProjectile; tracked != types.NoEntity {
		if pos := s.ecs.Positions[tracked]; pos != nil {
			return pos.Vec(), true
		}
	}
	if pos := s.ecs.Positions[s.focus]; pos != nil {
		return pos.Vec(), true
	}
	return geom.Vec2{}, false
}

// WorldToScreen переводит мировые координаты (метры, ось Y вверх)
// в экранные пиксели относительно центра камеры.
func (s *CameraSystem) WorldToScreen(v geom.Vec2) (float64, float64) {
	x := (v.X-s.center.X)*config.PixelsPerUnit + config.ScreenWidth/2
	y := config.ScreenHeight/2 - (v.Y-s.center.Y)*config.PixelsPerUnit
	return x, y
}

// ScreenToWorld — обратное преобразование, для прицеливания мышью.
func (s *CameraSystem) ScreenToWorld(x, y float64) geom.Vec2 {
	return geom.Vec2{
		X: s.center.X + (x-config.ScreenWidth/2)/config.PixelsPerUnit,
		Y: s.center.Y + (config.ScreenHeight/2-y)/config.PixelsPerUnit,
	}
}
