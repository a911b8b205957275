package curve

import (
	"math"
	"testing"
)

func TestEvaluateInterpolatesLinearly(t *testing.T) {
	c := Must(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 1, Value: 10},
	)
	cases := []struct{ t, want float64 }{
		{0, 0}, {0.25, 2.5}, {0.5, 5}, {1, 10},
	}
	for _, tc := range cases {
		if got := c.Evaluate(tc.t); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Evaluate(%f) = %f, want %f", tc.t, got, tc.want)
		}
	}
}

func TestEvaluateClampsOutsideRange(t *testing.T) {
	c := Must(
		Keyframe{T: 0.2, Value: 3},
		Keyframe{T: 0.8, Value: 7},
	)
	if got := c.Evaluate(-1); got != 3 {
		t.Fatalf("left clamp = %f, want 3", got)
	}
	if got := c.Evaluate(2); got != 7 {
		t.Fatalf("right clamp = %f, want 7", got)
	}
}

func TestNewSortsKeyframes(t *testing.T) {
	c := Must(
		Keyframe{T: 1, Value: 10},
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.5, Value: 5},
	)
	if got := c.Evaluate(0.75); math.Abs(got-7.5) > 1e-9 {
		t.Fatalf("Evaluate(0.75) = %f, want 7.5", got)
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error for empty keyframe list")
	}
}

func TestDefaultTrajectoryShape(t *testing.T) {
	c := DefaultTrajectory()
	if v := c.Evaluate(0); math.Abs(v) > 1e-9 {
		t.Fatalf("trajectory at 0 = %f, want 0", v)
	}
	if v := c.Evaluate(1); math.Abs(v) > 1e-9 {
		t.Fatalf("trajectory at 1 = %f, want 0", v)
	}
	if v := c.Evaluate(0.5); math.Abs(v-1) > 1e-3 {
		t.Fatalf("trajectory peak = %f, want ~1", v)
	}
}

func TestSampledMatchesFunction(t *testing.T) {
	f := func(t float64) float64 { return t * t }
	c := Sampled(f, 65)
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		if math.Abs(c.Evaluate(x)-f(x)) > 0.01 {
			t.Fatalf("sampled curve deviates at %f: %f vs %f", x, c.Evaluate(x), f(x))
		}
	}
}
