// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Sign возвращает -1 или +1 с равной вероятностью.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// ValueNoise1D — одномерный когерентный шум: значения в соседних точках
// меняются плавно, в отличие от белого шума. Используется для модуляции
// темпа стрельбы ИИ.
type ValueNoise1D struct {
	seed uint64
}

// NewValueNoise1D создает генератор когерентного шума с указанным сидом.
func NewValueNoise1D(seed int64) *ValueNoise1D {
	return &ValueNoise1D{seed: uint64(seed)}
}

// lattice возвращает детерминированное псевдослучайное значение [0,1)
// в целочисленном узле решётки.
func (n *ValueNoise1D) lattice(i int64) float64 {
	x := uint64(i)*0x9E3779B97F4A7C15 + n.seed
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float64(x>>11) / float64(1<<53)
}

// Sample возвращает значение шума в точке t, результат в диапазоне [0, 1].
func (n *ValueNoise1D) Sample(t float64) float64 {
	i := int64(math.Floor(t))
	f := t - math.Floor(t)
	// Сглаживание smoothstep, чтобы производная была непрерывной в узлах
	f = f * f * (3 - 2*f)
	a := n.lattice(i)
	b := n.lattice(i + 1)
	return a + (b-a)*f
}
