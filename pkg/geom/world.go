// pkg/geom/world.go
//
// Статическая геометрия уровня: отрезки земли и отскакивающих поверхностей,
// прямоугольные силовые поля. Ровно столько коллизий, сколько нужно игре:
// окружность против отрезка и отрезок против AABB, без полноценного
// физического движка.
package geom

import "math"

// SurfaceKind — тип поверхности уровня.
type SurfaceKind int

const (
	SurfaceGround SurfaceKind = iota // твёрдая земля, снаряд уничтожается
	SurfaceBounce                    // отражающая поверхность
)

func (k SurfaceKind) String() string {
	if k == SurfaceBounce {
		return "bounce"
	}
	return "ground"
}

// Segment — отрезок поверхности уровня.
type Segment struct {
	A, B Vec2
	Kind SurfaceKind
}

// Normal возвращает единичную нормаль отрезка, направленную «вверх»
// (в сторону положительного Y, чтобы снаряды отражались от лицевой стороны).
func (s Segment) Normal() Vec2 {
	n := s.B.Sub(s.A).Perp().Normalized()
	if n.Y < 0 {
		n = n.Scale(-1)
	}
	return n
}

// Field — прямоугольное направленное силовое поле. Пересечение линии
// прицеливания с полем переводит ИИ в баллистический режим.
type Field struct {
	Min, Max Vec2
}

// Contains сообщает, лежит ли точка внутри поля.
func (f Field) Contains(p Vec2) bool {
	return p.X >= f.Min.X && p.X <= f.Max.X && p.Y >= f.Min.Y && p.Y <= f.Max.Y
}

// World — неподвижная геометрия одного уровня.
type World struct {
	Segments []Segment
	Fields   []Field
}

// Contact — результат проверки столкновения окружности с поверхностью.
type Contact struct {
	Segment Segment
	Point   Vec2 // ближайшая точка поверхности
	Normal  Vec2 // нормаль столкновения, от поверхности к центру окружности
}

// CircleHit возвращает первое столкновение окружности (center, radius)
// с поверхностями мира.
func (w *World) CircleHit(center Vec2, radius float64) (Contact, bool) {
	for _, seg := range w.Segments {
		p := ClosestPointOnSegment(seg.A, seg.B, center)
		d := Dist(center, p)
		if d <= radius {
			n := center.Sub(p).Normalized()
			if n.LenSq() < 0.5 {
				// Центр лёг точно на поверхность, берём нормаль отрезка
				n = seg.Normal()
			}
			return Contact{Segment: seg, Point: p, Normal: n}, true
		}
	}
	return Contact{}, false
}

// SegmentCrossesField сообщает, пересекает ли отрезок [a, b] хотя бы одно
// силовое поле. Классический slab-тест луча против AABB.
func (w *World) SegmentCrossesField(a, b Vec2) bool {
	for _, f := range w.Fields {
		if segmentIntersectsAABB(a, b, f.Min, f.Max) {
			return true
		}
	}
	return false
}

func segmentIntersectsAABB(a, b, min, max Vec2) bool {
	d := b.Sub(a)
	tmin, tmax := 0.0, 1.0

	for axis := 0; axis < 2; axis++ {
		var origin, dir, lo, hi float64
		if axis == 0 {
			origin, dir, lo, hi = a.X, d.X, min.X, max.X
		} else {
			origin, dir, lo, hi = a.Y, d.Y, min.Y, max.Y
		}
		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}
