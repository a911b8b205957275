// internal/defs/types.go
package defs

import "go-artillery/internal/utils"

// ProjectileDefinition описывает тип снаряда из projectiles.json.
type ProjectileDefinition struct {
	ID              string  `json:"id"`
	Damage          float64 `json:"damage"`
	Radius          float64 `json:"radius"`
	Lifetime        float64 `json:"lifetime"`
	SpinRate        float64 `json:"spin_rate"` // градусов в секунду, чисто косметика
	BounceFactor    float64 `json:"bounce_factor"`
	DestroyOnHit    bool    `json:"destroy_on_hit"`    // уничтожаться при попадании в противника
	DestroyOnGround bool    `json:"destroy_on_ground"` // уничтожаться при касании земли
}

// AimSettings — настройки точности и темпа стрельбы ИИ.
// Все значения проходят Clamp при любой внешней мутации, так что
// вызывающий код не может загнать модель в некорректное состояние.
type AimSettings struct {
	Accuracy        float64 `json:"accuracy"`          // [0, 1]
	MinMissDistance float64 `json:"min_miss_distance"` // мировые единицы
	MaxMissDistance float64 `json:"max_miss_distance"`
	ShootInterval   float64 `json:"shoot_interval"` // секунд между выстрелами, ≥ 0.1
	IntervalJitter  float64 `json:"interval_jitter"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	ArcHeight       float64 `json:"arc_height"` // относительная высота дуги curve-режима
	HeightNoise     float64 `json:"height_noise"`
}

// Clamp приводит все поля к допустимым диапазонам.
func (a *AimSettings) Clamp() {
	a.Accuracy = utils.Clamp01(a.Accuracy)
	if a.MinMissDistance < 0 {
		a.MinMissDistance = 0
	}
	if a.MaxMissDistance < a.MinMissDistance {
		a.MaxMissDistance = a.MinMissDistance
	}
	if a.ShootInterval < 0.1 {
		a.ShootInterval = 0.1
	}
	if a.IntervalJitter < 0 {
		a.IntervalJitter = 0
	}
	if a.ProjectileSpeed < 0 {
		a.ProjectileSpeed = 0
	}
	if a.ArcHeight < 0 {
		a.ArcHeight = 0
	}
	if a.HeightNoise < 0 {
		a.HeightNoise = 0
	}
}

// Lerp возвращает покомпонентную интерполяцию между двумя пресетами,
// результат уже зажат в допустимые диапазоны.
func (a AimSettings) Lerp(b AimSettings, t float64) AimSettings {
	t = utils.Clamp01(t)
	out := AimSettings{
		Accuracy:        utils.Lerp(a.Accuracy, b.Accuracy, t),
		MinMissDistance: utils.Lerp(a.MinMissDistance, b.MinMissDistance, t),
		MaxMissDistance: utils.Lerp(a.MaxMissDistance, b.MaxMissDistance, t),
		ShootInterval:   utils.Lerp(a.ShootInterval, b.ShootInterval, t),
		IntervalJitter:  utils.Lerp(a.IntervalJitter, b.IntervalJitter, t),
		ProjectileSpeed: utils.Lerp(a.ProjectileSpeed, b.ProjectileSpeed, t),
		ArcHeight:       utils.Lerp(a.ArcHeight, b.ArcHeight, t),
		HeightNoise:     utils.Lerp(a.HeightNoise, b.HeightNoise, t),
	}
	out.Clamp()
	return out
}

// EnemyDefinition описывает тип противника из enemies.json.
// Easy и Hard — два пресета прицеливания, между которыми сцена
// интерполирует по своему коэффициенту сложности.
type EnemyDefinition struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	MaxHealth    float64     `json:"max_health"`
	ProjectileID string      `json:"projectile_id"`
	ForcePhysics bool        `json:"force_physics"` // всегда стрелять баллистически
	Easy         AimSettings `json:"easy"`
	Hard         AimSettings `json:"hard"`
}

// PointDef — точка в JSON-описании уровня.
type PointDef struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SegmentDef — отрезок поверхности в JSON-описании уровня.
type SegmentDef struct {
	A    PointDef `json:"a"`
	B    PointDef `json:"b"`
	Kind string   `json:"kind"` // "ground" | "bounce"
}

// FieldDef — прямоугольное силовое поле.
type FieldDef struct {
	Min PointDef `json:"min"`
	Max PointDef `json:"max"`
}

// EnemySpawnDef — размещение противника на уровне.
type EnemySpawnDef struct {
	EnemyID    string   `json:"enemy_id"`
	Position   PointDef `json:"position"`
	Difficulty float64  `json:"difficulty"` // [0,1], blend между Easy и Hard
}

// StageDefinition описывает уровень из stages.json.
type StageDefinition struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	PlayerSpawn      PointDef        `json:"player_spawn"`
	PlayerHealth     float64         `json:"player_health"`
	PlayerProjectile string          `json:"player_projectile"`
	Enemies          []EnemySpawnDef `json:"enemies"`
	Segments         []SegmentDef    `json:"segments"`
	Fields           []FieldDef      `json:"fields"`
}
