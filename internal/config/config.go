// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Мир симуляции: метры, ось Y направлена вверх.
	// PixelsPerUnit задаёт перевод мировых координат в экранные.
	PixelsPerUnit = 32.0
	Gravity       = 9.81

	// Снаряды
	ProjectileRadius       = 0.25 // радиус столкновений, в мировых единицах
	ProjectileLifetime     = 12.0 // секунд до принудительного уничтожения
	ProjectileArriveRadius = 0.35 // дистанция до цели, при которой curve-снаряд засчитывается
	BounceCooldown         = 0.1  // секунд между отражениями от одной поверхности
	MinBounceSpeed         = 3.0  // нижний порог скорости после отскока
	DefaultBounceFactor    = 0.8
	CurveVelocityEpsilon   = 1e-6

	// Ручной (заряжаемый) выстрел игрока
	PlayerMinShotSpeed    = 5.0
	PlayerMaxShotSpeed    = 20.0
	PlayerMaxChargeLength = 10.0

	// Баллистика
	FallbackHighArcAngle = 50.0 // градусов, если цель недостижима
	MinHighArcAngle      = 45.0
	MaxHighArcAngle      = 75.0
	MinEffectiveSpeedSq  = 25.0
	MinSolverDistance    = 0.1

	// Ход и тайминги координатора
	StandUpDuration    = 0.6 // подъём стрелка перед разрешением огня
	TurnTransitionTime = 1.0
	EnemyPreFireDelay  = 0.8
	EnemyTurnTimeout   = 6.0 // если ИИ не смог выстрелить, ход возвращается игроку

	// Камера
	CameraFollowSpeed = 4.0

	// Визуальные элементы
	HealthBarWidth    = 48.0 // пикселей
	HealthBarHeight   = 6.0
	HealthBarOffsetY  = 14.0
	FloatingTextLife  = 0.9
	FloatingTextSpeed = 28.0 // пикселей в секунду вверх
	AimPreviewSteps   = 24
	AimPreviewDt      = 0.08
	TrailMaxPoints    = 40
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 220}
	BounceColor     = color.RGBA{194, 178, 128, 255}
	FieldColor      = color.RGBA{120, 70, 150, 90}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	ProjectileColor = color.RGBA{240, 240, 240, 255}
	AimPreviewColor = color.RGBA{255, 255, 0, 160}
	TrailColor      = color.RGBA{255, 255, 255, 70}

	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	DamageTextColor   = color.RGBA{255, 120, 80, 255}
	HealTextColor     = color.RGBA{120, 255, 120, 255}
	HealthBarBack     = color.RGBA{40, 40, 50, 220}
	HealthBarFill     = color.RGBA{50, 205, 50, 255}
	HealthBarLow      = color.RGBA{220, 60, 60, 255}
	PlayerTurnColor   = color.RGBA{70, 130, 180, 220}
	EnemyTurnColor    = color.RGBA{220, 60, 60, 220}
	TransitionColor   = color.RGBA{194, 178, 128, 220}
	GameOverColor     = color.RGBA{120, 40, 40, 255}
	StageClearedColor = color.RGBA{40, 120, 60, 255}
	StrokeWidth       = 2.0
)
