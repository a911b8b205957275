// internal/curve/curve.go
package curve

import (
	"fmt"
	"math"
	"sort"
)

// Keyframe — опорная точка кривой: значение Value в момент T.
type Keyframe struct {
	T     float64 `json:"t"`
	Value float64 `json:"value"`
}

// Curve — кусочно-линейная функция, заданная списком опорных точек.
// Заменяет движковые AnimationCurve: чистая функция progress -> value,
// не зависящая от рендеринга.
type Curve struct {
	keys []Keyframe
}

// New создает кривую из набора опорных точек. Точки сортируются по T,
// кривая из нуля точек недопустима.
func New(keys ...Keyframe) (*Curve, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("curve requires at least one keyframe")
	}
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return &Curve{keys: sorted}, nil
}

// Must — как New, но паникует при ошибке. Для статических кривых в коде.
func Must(keys ...Keyframe) *Curve {
	c, err := New(keys...)
	if err != nil {
		panic(err)
	}
	return c
}

// Sampled строит кривую, равномерно сэмплируя функцию f на [0,1] в n точках.
func Sampled(f func(t float64) float64, n int) *Curve {
	if n < 2 {
		n = 2
	}
	keys := make([]Keyframe, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		keys[i] = Keyframe{T: t, Value: f(t)}
	}
	return Must(keys...)
}

// Evaluate возвращает значение кривой в точке t. За пределами крайних
// опорных точек значение фиксируется (clamp), как у движковых кривых.
func (c *Curve) Evaluate(t float64) float64 {
	keys := c.keys
	if t <= keys[0].T {
		return keys[0].Value
	}
	last := len(keys) - 1
	if t >= keys[last].T {
		return keys[last].Value
	}
	// Бинарный поиск сегмента, содержащего t
	i := sort.Search(len(keys), func(i int) bool { return keys[i].T > t }) - 1
	a, b := keys[i], keys[i+1]
	span := b.T - a.T
	if span <= 0 {
		return b.Value
	}
	f := (t - a.T) / span
	return a.Value + (b.Value-a.Value)*f
}

// Keys возвращает копию опорных точек кривой.
func (c *Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Стандартные кривые траектории. Форма арки — половина синусоиды:
// 0 на краях, 1 в середине пути.
func DefaultTrajectory() *Curve {
	return Sampled(func(t float64) float64 {
		return math.Sin(t * math.Pi)
	}, 17)
}

// DefaultSpeed — профиль скорости по ходу полёта: быстрый старт,
// лёгкое замедление у цели.
func DefaultSpeed() *Curve {
	return Must(
		Keyframe{T: 0, Value: 1.0},
		Keyframe{T: 0.7, Value: 1.0},
		Keyframe{T: 1, Value: 0.65},
	)
}

// DefaultCorrection — поправка оси по умолчанию отсутствует.
func DefaultCorrection() *Curve {
	return Must(Keyframe{T: 0, Value: 0}, Keyframe{T: 1, Value: 0})
}
