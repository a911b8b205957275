// component/movement.go
package component

import "go-artillery/pkg/geom"

// Position — компонент позиции в мировых координатах. Симуляция строго
// двумерная, третьей координаты не существует.
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p *Position) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Set обновляет позицию из вектора.
func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — компонент скорости
type Velocity struct {
	X, Y float64
}

// Vec возвращает скорость как вектор.
func (v *Velocity) Vec() geom.Vec2 {
	return geom.Vec2{X: v.X, Y: v.Y}
}

// Set обновляет скорость из вектора.
func (v *Velocity) Set(w geom.Vec2) {
	v.X, v.Y = w.X, w.Y
}
