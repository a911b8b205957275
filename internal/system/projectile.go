// internal/system/projectile.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/curve"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

// ProjectileSystem управляет полётом снарядов: два режима движения,
// одноразовый переход curve -> physics при отскоке, столкновения,
// урон и уничтожение.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	world           *geom.World
	logger          *log.Logger
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, combatSystem *CombatSystem, logger *log.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		combatSystem:    combatSystem,
		world:           &geom.World{},
		logger:          logger,
	}
}

// SetWorld подключает геометрию текущего уровня.
func (s *ProjectileSystem) SetWorld(w *geom.World) {
	if w == nil {
		w = &geom.World{}
	}
	s.world = w
}

// SpawnBallistic создает снаряд в физическом режиме с заданной начальной
// скоростью. Неизвестный тип снаряда — не ошибка: выстрел пропускается.
func (s *ProjectileSystem) SpawnBallistic(defID string, team types.Team, origin, velocity geom.Vec2) types.EntityID {
	def, ok := defs.ProjectileLibrary[defID]
	if !ok {
		s.logger.Warn("unknown projectile definition, shot skipped", "def", defID)
		return types.NoEntity
	}
	id := s.spawnCommon(def, team, origin)
	proj := s.ecs.Projectiles[id]
	proj.Mode = component.ManualPhysics
	s.ecs.Velocities[id] = &component.Velocity{X: velocity.X, Y: velocity.Y}
	s.fired(id, proj, origin, velocity)
	return id
}

// SpawnCurve создает снаряд в режиме следования кривой: полёт целиком
// определяется кривыми формы, поправки и скорости, без физических сил.
func (s *ProjectileSystem) SpawnCurve(defID string, team types.Team, start, target geom.Vec2, maxSpeed, arcHeight float64) types.EntityID {
	def, ok := defs.ProjectileLibrary[defID]
	if !ok {
		s.logger.Warn("unknown projectile definition, shot skipped", "def", defID)
		return types.NoEntity
	}
	id := s.spawnCommon(def, team, start)
	proj := s.ecs.Projectiles[id]
	proj.Mode = component.CurveFollowing
	proj.Start = start
	proj.Target = target
	proj.MaxSpeed = maxSpeed
	proj.ArcHeight = arcHeight
	proj.Trajectory = curve.DefaultTrajectory()
	proj.Correction = curve.DefaultCorrection()
	proj.SpeedCurve = curve.DefaultSpeed()
	proj.ArriveRadius = config.ProjectileArriveRadius
	s.ecs.Velocities[id] = &component.Velocity{}
	s.fired(id, proj, start, geom.Vec2{})
	return id
}

func (s *ProjectileSystem) spawnCommon(def defs.ProjectileDefinition, team types.Team, origin geom.Vec2) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		DefID:           def.ID,
		Team:            team,
		Damage:          def.Damage,
		Radius:          def.Radius,
		Gravity:         config.Gravity,
		SpinRate:        def.SpinRate,
		Lifetime:        def.Lifetime,
		BounceFactor:    def.BounceFactor,
		DestroyOnHit:    def.DestroyOnHit,
		DestroyOnGround: def.DestroyOnGround,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: float32(def.Radius * config.PixelsPerUnit),
	}
	s.ecs.Trails[id] = &component.Trail{Max: config.TrailMaxPoints}
	return id
}

func (s *ProjectileSystem) fired(id types.EntityID, proj *component.Projectile, origin, velocity geom.Vec2) {
	s.logger.Debug("projectile fired", "id", id, "def", proj.DefID, "mode", proj.Mode, "team", proj.Team)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileFiredPayload{
		ID: id, Team: proj.Team, Origin: origin, Velocity: velocity,
	}})
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		if proj.Destroyed {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			s.Destroy(id, "expired")
			continue
		}
		if proj.BounceCooldown > 0 {
			proj.BounceCooldown -= deltaTime
		}
		if proj.Disabled {
			continue
		}
		proj.SpinAngle += proj.SpinRate * deltaTime

		switch proj.Mode {
		case component.CurveFollowing:
			s.updateCurve(id, proj, pos, deltaTime)
		case component.ManualPhysics:
			s.updatePhysics(id, proj, pos, deltaTime)
		}
		if proj.Destroyed {
			continue
		}

		if trail := s.ecs.Trails[id]; trail != nil {
			trail.Push(pos.X, pos.Y)
		}

		s.resolveCollisions(id, proj, pos)
		if proj.Destroyed {
			continue
		}

		// Близость к цели засчитывается только в curve-режиме
		if proj.Mode == component.CurveFollowing && geom.Dist(pos.Vec(), proj.Target) <= proj.ArriveRadius {
			s.Destroy(id, "arrived")
		}
	}
}

// updateCurve продвигает снаряд вдоль детерминированной кривой.
// X движется по кривой скорости, Y выводится из формы траектории
// и поправки оси; скорость восстанавливается из разности позиций —
// она понадобится при отскоке.
func (s *ProjectileSystem) updateCurve(id types.EntityID, proj *component.Projectile, pos *component.Position, deltaTime float64) {
	if proj.Trajectory == nil || proj.Correction == nil || proj.SpeedCurve == nil {
		if !proj.WarnedOnce {
			proj.WarnedOnce = true
			s.logger.Warn("curve projectile missing curves, update disabled", "id", id)
		}
		proj.Disabled = true
		return
	}
	span := proj.Target.X - proj.Start.X
	if math.Abs(span) < config.MinSolverDistance {
		// Цель прямо над стартом, кривая по X вырождена
		s.Destroy(id, "arrived")
		return
	}

	prev := pos.Vec()
	progress := utils.Clamp01((pos.X - proj.Start.X) / span)
	speed := proj.SpeedCurve.Evaluate(progress) * proj.MaxSpeed
	dir := 1.0
	if span < 0 {
		dir = -1
	}
	newX := pos.X + dir*speed*deltaTime
	newProgress := utils.Clamp01((newX - proj.Start.X) / span)

	base := proj.Start.Y + (proj.Target.Y-proj.Start.Y)*newProgress
	arc := proj.Trajectory.Evaluate(newProgress) * proj.ArcHeight * math.Abs(span)
	corr := proj.Correction.Evaluate(newProgress)

	pos.X = newX
	pos.Y = base + arc + corr

	if vel := s.ecs.Velocities[id]; vel != nil && deltaTime > config.CurveVelocityEpsilon {
		vel.Set(pos.Vec().Sub(prev).Scale(1 / deltaTime))
	}
}

// updatePhysics — полуявный Эйлер: сначала скорость, затем позиция.
func (s *ProjectileSystem) updatePhysics(id types.EntityID, proj *component.Projectile, pos *component.Position, deltaTime float64) {
	vel := s.ecs.Velocities[id]
	if vel == nil {
		vel = &component.Velocity{}
		s.ecs.Velocities[id] = vel
	}
	vel.Y -= proj.Gravity * deltaTime
	pos.X += vel.X * deltaTime
	pos.Y += vel.Y * deltaTime
}

func (s *ProjectileSystem) resolveCollisions(id types.EntityID, proj *component.Projectile, pos *component.Position) {
	center := pos.Vec()

	// Попадания по стрелкам
	for sid, shooter := range s.ecs.Shooters {
		health := s.ecs.Healths[sid]
		spos := s.ecs.Positions[sid]
		if health == nil || spos == nil || health.Dead {
			continue
		}
		if !proj.Team.Hostile(health.Team) {
			continue
		}
		if geom.Dist(center, spos.Vec()) > proj.Radius+shooter.Radius {
			delete(proj.Touching, sid)
			continue
		}
		// Один контакт — один урон: пока перекрытие не разорвано,
		// повторные тики по той же цели ничего не начисляют
		if proj.Touching[sid] {
			continue
		}
		if proj.Touching == nil {
			proj.Touching = make(map[types.EntityID]bool)
		}
		proj.Touching[sid] = true
		s.combatSystem.ApplyDamage(sid, proj.Damage, proj.Team)
		if proj.DestroyOnHit {
			s.Destroy(id, "hit")
			return
		}
	}

	// Поверхности уровня
	contact, hit := s.world.CircleHit(center, proj.Radius)
	if !hit {
		return
	}
	switch contact.Segment.Kind {
	case geom.SurfaceBounce:
		s.bounce(id, proj, contact)
	case geom.SurfaceGround:
		if proj.DestroyOnGround {
			s.Destroy(id, "ground")
		} else {
			s.bounce(id, proj, contact)
		}
	}
}

// bounce отражает снаряд от поверхности. В curve-режиме это одноразовый
// переход в физический режим: назад в curve снаряд не возвращается.
func (s *ProjectileSystem) bounce(id types.EntityID, proj *component.Projectile, contact geom.Contact) {
	if proj.BounceCooldown > 0 {
		return
	}
	vel := s.ecs.Velocities[id]
	if vel == nil {
		return
	}
	incoming := vel.Vec()
	speed := incoming.Len() * proj.BounceFactor
	if speed < config.MinBounceSpeed {
		speed = config.MinBounceSpeed
	}
	dir := geom.Reflect(incoming, contact.Normal).Normalized()
	if dir.LenSq() < config.CurveVelocityEpsilon {
		// Нулевая входящая скорость (curve-снаряд до первого вывода
		// скорости): отражать нечего, уходим вдоль нормали поверхности
		dir = contact.Normal
	}
	vel.Set(dir.Scale(speed))

	if proj.Mode == component.CurveFollowing {
		proj.Mode = component.ManualPhysics
		proj.Bounced = true
		s.logger.Debug("projectile bounced into physics mode", "id", id)
	}
	proj.BounceCooldown = config.BounceCooldown
}

// Destroy уничтожает снаряд ровно один раз: повторные вызовы (гонка
// «земля и истечение жизни в один тик») — no-op.
func (s *ProjectileSystem) Destroy(id types.EntityID, reason string) {
	proj, ok := s.ecs.Projectiles[id]
	if !ok || proj.Destroyed {
		return
	}
	proj.Destroyed = true

	var at geom.Vec2
	if pos := s.ecs.Positions[id]; pos != nil {
		at = pos.Vec()
	}
	s.logger.Debug("projectile destroyed", "id", id, "reason", reason)
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileDestroyed, Data: event.ProjectileDestroyedPayload{
		ID: id, At: at, Reason: reason,
	}})
}
