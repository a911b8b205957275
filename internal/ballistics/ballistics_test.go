package ballistics

import (
	"math"
	"testing"

	"go-artillery/internal/utils"
	"go-artillery/pkg/geom"
)

const g = 9.8

func TestSolveHighArcAnglePicksHighBranch(t *testing.T) {
	// dx=10, dy=0, v=12: tanθ = (144 + √(144² − 9.8²·100)) / 98 ≈ 2.546
	got := SolveHighArcAngle(10, 0, 12, g)
	want := utils.Rad2Deg(math.Atan((144 + math.Sqrt(144*144-g*g*100)) / (g * 10)))
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("angle = %f, want %f", got, want)
	}
	if got < 45 || got > 75 {
		t.Fatalf("angle %f outside lob range", got)
	}
}

func TestSolveHighArcAngleUnreachableFallsBack(t *testing.T) {
	// Слишком далёкая цель для такой скорости
	if got := SolveHighArcAngle(100, 0, 5, g); got != 50 {
		t.Fatalf("unreachable target: angle = %f, want fallback 50", got)
	}
}

func TestSolveHighArcAngleDegenerateDistance(t *testing.T) {
	if got := SolveHighArcAngle(0.05, 3, 20, g); got != 45 {
		t.Fatalf("degenerate dx: angle = %f, want 45", got)
	}
}

func TestSolveHighArcAngleClamped(t *testing.T) {
	// Большая скорость даёт почти вертикальный верхний корень — зажимается в 75
	if got := SolveHighArcAngle(10, 0, 100, g); got != 75 {
		t.Fatalf("angle = %f, want clamp 75", got)
	}
}

func TestSpeedForAngleRoundTrip(t *testing.T) {
	cases := []struct {
		dx, dy, speed float64
	}{
		{10, 0, 12},
		{8, 2, 13},
		{15, -3, 14},
		{6, 1, 11},
	}
	for _, tc := range cases {
		angle := SolveHighArcAngle(tc.dx, tc.dy, tc.speed, g)
		if angle <= 45 || angle >= 75 {
			// Зажатый угол ломает точное обращение, такие случаи не
			// участвуют в проверке обратимости
			continue
		}
		back := SolveSpeedForAngle(tc.dx, tc.dy, angle, g)
		if math.Abs(back-tc.speed) > 1e-6 {
			t.Fatalf("round trip dx=%f dy=%f: speed %f -> angle %f -> speed %f",
				tc.dx, tc.dy, tc.speed, angle, back)
		}
		// Аналитическая проверка попадания: y(x=dx) должен совпасть с dy
		theta := utils.Deg2Rad(angle)
		tFlight := tc.dx / (back * math.Cos(theta))
		y := back*math.Sin(theta)*tFlight - 0.5*g*tFlight*tFlight
		if math.Abs(y-tc.dy) > 1e-6 {
			t.Fatalf("trajectory misses target: y(%f) = %f, want %f", tc.dx, y, tc.dy)
		}
	}
}

func TestSpeedForAngleImpossibleShot(t *testing.T) {
	// Цель выше, чем достаёт прямая под этим углом: dx·tanθ − dy ≤ 0
	got := SolveSpeedForAngle(5, 10, 45, g)
	if math.Abs(got-5) > 1e-9 {
		t.Fatalf("impossible shot: speed = %f, want fallback 5", got)
	}
}

func TestSpeedForAngleNeverBelowFloor(t *testing.T) {
	// Близкая цель: честное решение дало бы v² < 25, итог поднимается до пола
	got := SolveSpeedForAngle(0.5, 0, 60, g)
	if got < 5 {
		t.Fatalf("speed %f below floor 5", got)
	}
}

func TestComputeInitialVelocityChargeScenario(t *testing.T) {
	// Игрок в (0,0), точка мыши (5,0): скорость lerp(5,20, 5/10) = 12.5 вдоль +X
	v := ComputeInitialVelocity(geom.Vec2{X: 5, Y: 0}, 5, 5, 20, 10)
	if math.Abs(v.X-12.5) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("velocity = (%f, %f), want (12.5, 0)", v.X, v.Y)
	}
}

func TestComputeInitialVelocityClampsCharge(t *testing.T) {
	v := ComputeInitialVelocity(geom.Vec2{X: 1, Y: 0}, 100, 5, 20, 10)
	if math.Abs(v.X-20) > 1e-9 {
		t.Fatalf("overcharged speed = %f, want clamp 20", v.X)
	}
	v = ComputeInitialVelocity(geom.Vec2{X: 0, Y: 1}, 0, 5, 20, 10)
	if math.Abs(v.Y-5) > 1e-9 {
		t.Fatalf("zero charge speed = %f, want 5", v.Y)
	}
}

func TestComputeInitialVelocityZeroDirection(t *testing.T) {
	v := ComputeInitialVelocity(geom.Vec2{}, 5, 5, 20, 10)
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("zero direction must give zero velocity, got (%f, %f)", v.X, v.Y)
	}
}

func TestLaunchVelocityRespectsSign(t *testing.T) {
	v := LaunchVelocity(60, 10, -1)
	if v.X >= 0 {
		t.Fatalf("negative horizontal sign must flip X, got %f", v.X)
	}
	if math.Abs(math.Hypot(v.X, v.Y)-10) > 1e-9 {
		t.Fatalf("speed magnitude = %f, want 10", math.Hypot(v.X, v.Y))
	}
}

func TestNoNaNLeaks(t *testing.T) {
	inputs := [][4]float64{
		{0, 0, 0, g},
		{-5, 3, 0.0001, g},
		{1e9, -1e9, 1, g},
	}
	for _, in := range inputs {
		a := SolveHighArcAngle(in[0], in[1], in[2], in[3])
		s := SolveSpeedForAngle(in[0], in[1], a, in[3])
		if math.IsNaN(a) || math.IsNaN(s) {
			t.Fatalf("NaN escaped for input %v: angle=%f speed=%f", in, a, s)
		}
	}
}

func TestPreviewTrajectoryMatchesKinematics(t *testing.T) {
	origin := geom.Vec2{X: 1, Y: 2}
	velocity := geom.Vec2{X: 6, Y: 9}
	points := PreviewTrajectory(origin, velocity, 9.8, 10, 0.1)
	if len(points) != 10 {
		t.Fatalf("len(points) = %d, want 10", len(points))
	}
	// Точка на шаге 5: t = 0.5
	want := geom.Vec2{X: 1 + 6*0.5, Y: 2 + 9*0.5 - 0.5*9.8*0.25}
	got := points[4]
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("points[4] = %v, want %v", got, want)
	}
	if PreviewTrajectory(origin, velocity, 9.8, 0, 0.1) != nil {
		t.Fatal("zero steps must yield nil")
	}
}
