// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32 // пикселей
	HasStroke bool
}

// Trail — след снаряда: последние точки траектории в мировых координатах.
type Trail struct {
	Points [][2]float64
	Max    int
}

// Push добавляет точку, вытесняя самую старую при переполнении.
func (t *Trail) Push(x, y float64) {
	t.Points = append(t.Points, [2]float64{x, y})
	if t.Max > 0 && len(t.Points) > t.Max {
		t.Points = t.Points[len(t.Points)-t.Max:]
	}
}
