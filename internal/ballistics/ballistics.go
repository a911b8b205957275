// internal/ballistics/ballistics.go
//
// Чистая баллистика: замкнутые решения уравнения дальности снаряда.
// Никакого состояния и побочных эффектов; любой вырожденный вход
// деградирует до безопасного играбельного значения, NaN наружу не выходит.
package ballistics

import (
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

// SolveHighArcAngle решает уравнение дальности
//
//	tan θ = (v² ± √(v⁴ − g(g·x² + 2·y·v²))) / (g·x)
//
// и возвращает больший корень — угол навесной траектории, в градусах.
// Недостижимая цель (отрицательный дискриминант) даёт запасной угол 50°,
// результат всегда зажат в [45°, 75°], чтобы выстрел читался как «лоб».
func SolveHighArcAngle(horizontalDistance, heightDifference, speed, gravity float64) float64 {
	dx := math.Abs(horizontalDistance)
	if dx < config.MinSolverDistance {
		// Цель практически над стрелком, деление на g·x взорвётся
		return config.MinHighArcAngle
	}
	v2 := speed * speed
	disc := v2*v2 - gravity*(gravity*dx*dx+2*heightDifference*v2)
	if disc < 0 {
		return config.FallbackHighArcAngle
	}
	tan := (v2 + math.Sqrt(disc)) / (gravity * dx)
	deg := utils.Rad2Deg(math.Atan(tan))
	return utils.Clamp(deg, config.MinHighArcAngle, config.MaxHighArcAngle)
}

// SolveSpeedForAngle — обратная задача: при фиксированном угле (в градусах)
// найти скорость, попадающую в цель. Геометрически невозможный выстрел
// (неположительный знаменатель) даёт запасную скорость с v² = 25.
func SolveSpeedForAngle(horizontalDistance, heightDifference, angleDeg, gravity float64) float64 {
	dx := math.Abs(horizontalDistance)
	theta := utils.Deg2Rad(angleDeg)
	cos := math.Cos(theta)
	denom := 2 * cos * cos * (dx*math.Tan(theta) - heightDifference)
	if denom <= 0 || dx < config.MinSolverDistance {
		return math.Sqrt(config.MinEffectiveSpeedSq)
	}
	v2 := gravity * dx * dx / denom
	if v2 < config.MinEffectiveSpeedSq {
		v2 = config.MinEffectiveSpeedSq
	}
	return math.Sqrt(v2)
}

// ComputeInitialVelocity возвращает начальную скорость заряжаемого выстрела:
// направление direction, модуль — линейная интерполяция между minSpeed и
// maxSpeed по нормированной длине натяжения distance/maxChargeDistance.
func ComputeInitialVelocity(direction geom.Vec2, distance, minSpeed, maxSpeed, maxChargeDistance float64) geom.Vec2 {
	if maxChargeDistance <= 0 {
		maxChargeDistance = 1
	}
	speed := utils.Lerp(minSpeed, maxSpeed, utils.Clamp01(distance/maxChargeDistance))
	length := math.Hypot(direction.X, direction.Y)
	if length < 1e-9 {
		return geom.Vec2{}
	}
	return geom.Vec2{
		X: direction.X / length * speed,
		Y: direction.Y / length * speed,
	}
}

// LaunchVelocity собирает вектор скорости из угла (в градусах), модуля
// скорости и горизонтального направления выстрела (знак dx).
func LaunchVelocity(angleDeg, speed, horizontalSign float64) geom.Vec2 {
	theta := utils.Deg2Rad(angleDeg)
	sign := 1.0
	if horizontalSign < 0 {
		sign = -1
	}
	return geom.Vec2{
		X: sign * speed * math.Cos(theta),
		Y: speed * math.Sin(theta),
	}
}

// PreviewTrajectory строит точки предпросмотра баллистического полёта:
// позиция каждые dt секунд при данной начальной скорости и гравитации.
func PreviewTrajectory(origin, velocity geom.Vec2, gravity float64, steps int, dt float64) []geom.Vec2 {
	if steps <= 0 || dt <= 0 {
		return nil
	}
	points := make([]geom.Vec2, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) * dt
		points = append(points, geom.Vec2{
			X: origin.X + velocity.X*t,
			Y: origin.Y + velocity.Y*t - 0.5*gravity*t*t,
		})
	}
	return points
}
