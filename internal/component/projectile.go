// internal/component/projectile.go
package component

import (
	"go-artillery/internal/curve"
	"go-artillery/internal/types"
	"go-artillery/pkg/geom"
)

// MotionMode — режим движения снаряда. Режимы взаимоисключающие и
// выбираются при создании; единственный допустимый переход —
// одноразовый CurveFollowing -> ManualPhysics при отскоке.
type MotionMode int

const (
	ManualPhysics MotionMode = iota
	CurveFollowing
)

func (m MotionMode) String() string {
	if m == CurveFollowing {
		return "curve"
	}
	return "physics"
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	DefID string
	Mode  MotionMode
	Team  types.Team

	Damage          float64
	Radius          float64
	Gravity         float64
	SpinRate        float64 // косметическое вращение, градусов в секунду
	SpinAngle       float64
	Lifetime        float64 // оставшееся время жизни, секунд
	BounceFactor    float64
	DestroyOnHit    bool
	DestroyOnGround bool

	// Curve-режим: параметры детерминированной траектории
	Start        geom.Vec2
	Target       geom.Vec2
	MaxSpeed     float64 // максимальная горизонтальная скорость
	ArcHeight    float64 // относительная высота дуги
	Trajectory   *curve.Curve
	Correction   *curve.Curve
	SpeedCurve   *curve.Curve
	ArriveRadius float64 // дистанция до цели, на которой снаряд засчитывается

	// Служебные флаги
	Bounced        bool    // после отскока возврат в curve-режим невозможен
	BounceCooldown float64 // защита от повторного отскока от того же контакта
	Destroyed      bool    // идемпотентный destroy-guard
	Disabled       bool    // недоинициализированный curve-снаряд выключается, а не падает
	WarnedOnce     bool

	// Цели, с которыми перекрытие ещё не разорвано: урон начисляется
	// один раз на касание, а не каждый тик симуляции
	Touching map[types.EntityID]bool
}
