// pkg/geom/vec.go
package geom

import "math"

// Vec2 — двумерный вектор мировых координат (ось Y направлена вверх).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }

// Perp возвращает вектор, повернутый на 90° против часовой стрелки.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist возвращает расстояние между двумя точками.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Reflect отражает вектор v от поверхности с нормалью n (n единичная).
func Reflect(v, n Vec2) Vec2 {
	d := v.Dot(n)
	return v.Sub(n.Scale(2 * d))
}

// ClosestPointOnSegment возвращает ближайшую к p точку отрезка [a, b].
func ClosestPointOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < 1e-12 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
