// internal/system/ai.go
package system

import (
	"math"

	"github.com/charmbracelet/log"

	"go-artillery/internal/ballistics"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

// AISystem — модель прицеливания противников: вероятностный промах,
// смещение точки прицеливания перпендикулярно линии огня и темп
// стрельбы, модулированный когерентным шумом.
type AISystem struct {
	ecs              *entity.ECS
	projectileSystem *ProjectileSystem
	world            *geom.World
	rng              *utils.PRNGService
	noise            *utils.ValueNoise1D
	logger           *log.Logger
}

func NewAISystem(ecs *entity.ECS, projectileSystem *ProjectileSystem, rng *utils.PRNGService, logger *log.Logger) *AISystem {
	return &AISystem{
		ecs:              ecs,
		projectileSystem: projectileSystem,
		world:            &geom.World{},
		rng:              rng,
		noise:            utils.NewValueNoise1D(rng.Seed()),
		logger:           logger,
	}
}

// SetWorld подключает геометрию уровня (нужна для автовыбора
// баллистического режима поверх силовых полей).
func (s *AISystem) SetWorld(w *geom.World) {
	if w == nil {
		w = &geom.World{}
	}
	s.world = w
}

// ComputeAimPoint решает «попадёт или промахнётся» и возвращает точку
// прицеливания. Попадание — точная позиция цели. Промах — смещение
// перпендикулярно линии огня с величиной, растущей с (1 − accuracy),
// плюс независимый вертикальный шум до ±25% величины промаха.
func (s *AISystem) ComputeAimPoint(from, target geom.Vec2, settings defs.AimSettings) geom.Vec2 {
	if s.rng.Float64() <= settings.Accuracy {
		return target
	}

	severity := 1 - settings.Accuracy
	low := utils.Lerp(settings.MinMissDistance*0.5, settings.MinMissDistance, severity)
	high := utils.Lerp(settings.MinMissDistance, settings.MaxMissDistance, severity)
	if high < low {
		high = low
	}
	magnitude := s.rng.Range(low, high)

	perp := target.Sub(from).Normalized().Perp()
	if perp.LenSq() < 0.5 {
		perp = geom.Vec2{X: 0, Y: 1}
	}
	offset := perp.Scale(magnitude * s.rng.Sign())
	offset.Y += (s.rng.Float64()*2 - 1) * 0.25 * magnitude
	return target.Add(offset)
}

// NextShotDelay возвращает задержку до следующего выстрела противника.
// База умножается на (1 + шум·jitter); шум когерентный, поэтому соседние
// задержки меняются плавно, а не скачут. Пол — 0.1 секунды.
func (s *AISystem) NextShotDelay(enemyID types.EntityID) float64 {
	ai := s.ecs.EnemyAIs[enemyID]
	if ai == nil {
		return config.EnemyPreFireDelay
	}
	ai.NoiseCursor += 0.73
	delay := ai.Settings.ShootInterval * (1 + s.noise.Sample(ai.NoiseCursor)*ai.Settings.IntervalJitter)
	if delay < 0.1 {
		delay = 0.1
	}
	return delay
}

// TryFire выполняет выстрел противника. Отсутствие цели или настроек —
// не ошибка: попытка пропускается, ход продолжается.
func (s *AISystem) TryFire(enemyID types.EntityID) (types.EntityID, bool) {
	ai := s.ecs.EnemyAIs[enemyID]
	shooter := s.ecs.Shooters[enemyID]
	pos := s.ecs.Positions[enemyID]
	if ai == nil || shooter == nil || pos == nil {
		s.logger.Warn("enemy cannot fire: incomplete shooter state", "id", enemyID)
		return types.NoEntity, false
	}
	targetPos := s.ecs.Positions[ai.TargetID]
	targetHealth := s.ecs.Healths[ai.TargetID]
	if targetPos == nil || targetHealth == nil || targetHealth.Dead {
		s.logger.Warn("enemy cannot fire: no living target", "id", enemyID)
		return types.NoEntity, false
	}

	muzzle := pos.Vec().Add(shooter.MuzzleOffset)
	aim := s.ComputeAimPoint(muzzle, targetPos.Vec(), ai.Settings)

	usePhysics := ai.ForcePhysics || s.world.SegmentCrossesField(muzzle, aim)
	var projID types.EntityID
	if usePhysics {
		dx := aim.X - muzzle.X
		dy := aim.Y - muzzle.Y
		angle := ballistics.SolveHighArcAngle(math.Abs(dx), dy, ai.Settings.ProjectileSpeed, config.Gravity)
		speed := ballistics.SolveSpeedForAngle(math.Abs(dx), dy, angle, config.Gravity)
		velocity := ballistics.LaunchVelocity(angle, speed, dx)
		projID = s.projectileSystem.SpawnBallistic(shooter.ProjectileID, shooter.Team, muzzle, velocity)
	} else {
		arc := ai.Settings.ArcHeight + (s.rng.Float64()*2-1)*ai.Settings.HeightNoise
		if arc < 0.05 {
			arc = 0.05
		}
		projID = s.projectileSystem.SpawnCurve(shooter.ProjectileID, shooter.Team, muzzle, aim, ai.Settings.ProjectileSpeed, arc)
	}
	if projID == types.NoEntity {
		return types.NoEntity, false
	}
	s.logger.Debug("enemy fired", "id", enemyID, "physics", usePhysics, "aim_x", aim.X, "aim_y", aim.Y)
	return projID, true
}
