package ease

import (
	"math"
	"testing"
)

const tol = 1e-6

func almost(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAllCurvesHitEndpoints(t *testing.T) {
	for _, c := range Curves {
		if c == Nearest {
			continue
		}
		if got := c.Ease(0); !almost(got, 0) {
			t.Errorf("%v.Ease(0) = %v, want 0", c, got)
		}
		if got := c.Ease(1); !almost(got, 1) {
			t.Errorf("%v.Ease(1) = %v, want 1", c, got)
		}
	}
}

func TestNearestIsConstantZero(t *testing.T) {
	for _, x := range []float64{-1, 0, 0.25, 0.5, 0.99, 1, 2} {
		if got := Nearest.Ease(x); got != 0 {
			t.Errorf("Nearest.Ease(%v) = %v, want 0", x, got)
		}
	}
}

func TestGoldenValues(t *testing.T) {
	// Reference values from the standard easings.net curve definitions.
	cases := []struct {
		curve Curve
		x     float64
		want  float64
	}{
		{Linear, 0.25, 0.25},
		{Linear, 0.5, 0.5},

		{InSine, 0.5, 0.2928932188134524},
		{OutSine, 0.5, 0.7071067811865476},
		{InOutSine, 0.5, 0.5},

		{InQuad, 0.25, 0.0625},
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InOutQuad, 0.25, 0.125},
		{InOutQuad, 0.5, 0.5},
		{InOutQuad, 0.75, 0.875},

		{InCubic, 0.5, 0.125},
		{OutCubic, 0.5, 0.875},
		{InOutCubic, 0.25, 0.0625},
		{InOutCubic, 0.75, 0.9375},

		{InQuart, 0.5, 0.0625},
		{OutQuart, 0.5, 0.9375},
		{InQuint, 0.5, 0.03125},
		{OutQuint, 0.5, 0.96875},

		{InExpo, 0.5, 0.03125},
		{OutExpo, 0.5, 0.96875},
		{InOutExpo, 0.25, 0.015625},
		{InOutExpo, 0.75, 0.984375},

		{InCirc, 0.5, 0.1339745962155614},
		{OutCirc, 0.5, 0.8660254037844386},

		{InBack, 0.5, -0.0876975},
		{OutBack, 0.5, 1.0876975},
		{InOutBack, 0.5, 0.5},

		{InElastic, 0.5, -0.015625},
		{OutElastic, 0.5, 1.015625},
		{InOutElastic, 0.5, 0.5},

		{InBounce, 0.5, 0.234375},
		{OutBounce, 0.5, 0.765625},
		{OutBounce, 0.25, 0.47265625},
		{InOutBounce, 0.5, 0.5},
	}
	for _, tc := range cases {
		if got := tc.curve.Ease(tc.x); !almost(got, tc.want) {
			t.Errorf("%v.Ease(%v) = %v, want %v", tc.curve, tc.x, got, tc.want)
		}
	}
}

func TestBounceThresholds(t *testing.T) {
	// The bounce segments must join continuously at 1/2.75, 2/2.75, 2.5/2.75.
	for _, x := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
		lo := OutBounce.Ease(x - 1e-9)
		hi := OutBounce.Ease(x + 1e-9)
		if math.Abs(hi-lo) > 1e-6 {
			t.Errorf("OutBounce discontinuous at %v: %v vs %v", x, lo, hi)
		}
	}
}

func TestOvershootCurvesLeaveUnitRange(t *testing.T) {
	if InBack.Ease(0.5) >= 0 {
		t.Error("InBack should dip below 0 mid-curve")
	}
	if OutBack.Ease(0.5) <= 1 {
		t.Error("OutBack should overshoot above 1 mid-curve")
	}
	if OutElastic.Ease(0.5) <= 1 {
		t.Error("OutElastic should overshoot above 1 at 0.5")
	}
}

func TestMonotoneCurvesStayInUnitRange(t *testing.T) {
	monotone := []Curve{
		Linear,
		InSine, OutSine, InOutSine,
		InQuad, OutQuad, InOutQuad,
		InCubic, OutCubic, InOutCubic,
		InQuart, OutQuart, InOutQuart,
		InQuint, OutQuint, InOutQuint,
		InExpo, OutExpo, InOutExpo,
		InCirc, OutCirc, InOutCirc,
		InBounce, OutBounce, InOutBounce,
	}
	for _, c := range monotone {
		for x := 0.0; x <= 1.0; x += 0.01 {
			got := c.Ease(x)
			if got < -tol || got > 1+tol {
				t.Errorf("%v.Ease(%v) = %v, outside [0,1]", c, x, got)
			}
		}
	}
}

func TestCurveString(t *testing.T) {
	if got := InOutQuad.String(); got != "InOutQuad" {
		t.Errorf("String() = %q, want InOutQuad", got)
	}
	if got := Nearest.String(); got != "Nearest" {
		t.Errorf("String() = %q, want Nearest", got)
	}
	// Out-of-range values read as the default curve.
	if got := Curve(999).String(); got != "Linear" {
		t.Errorf("String() = %q, want Linear", got)
	}
}

func TestUnknownCurveEvaluatesLinear(t *testing.T) {
	if got := Curve(999).Ease(0.3); got != 0.3 {
		t.Errorf("unknown curve Ease(0.3) = %v, want 0.3", got)
	}
}

func TestSmoothStep(t *testing.T) {
	if got := SmoothStep(0, 1, 0.5); !almost(got, 0.5) {
		t.Errorf("SmoothStep mid = %v, want 0.5", got)
	}
	if got := SmoothStep(0, 10, 0.25); !almost(got, 1.5625) {
		t.Errorf("SmoothStep(0,10,0.25) = %v, want 1.5625", got)
	}
	// t is clamped, so the result pins at the endpoints.
	if got := SmoothStep(2, 8, -1); got != 2 {
		t.Errorf("SmoothStep below range = %v, want 2", got)
	}
	if got := SmoothStep(2, 8, 5); got != 8 {
		t.Errorf("SmoothStep above range = %v, want 8", got)
	}
}

func TestSmootherStep(t *testing.T) {
	if got := SmootherStep(0, 1, 0.5); !almost(got, 0.5) {
		t.Errorf("SmootherStep mid = %v, want 0.5", got)
	}
	// Flatter near the ends than SmoothStep.
	if SmootherStep(0, 1, 0.1) >= SmoothStep(0, 1, 0.1) {
		t.Error("SmootherStep should start flatter than SmoothStep")
	}
	if got := SmootherStep(0, 1, 2); got != 1 {
		t.Errorf("SmootherStep above range = %v, want 1", got)
	}
}

func TestMoveTowards(t *testing.T) {
	if got := MoveTowards(0, 10, 3); got != 3 {
		t.Errorf("MoveTowards(0,10,3) = %v, want 3", got)
	}
	if got := MoveTowards(9, 10, 3); got != 10 {
		t.Errorf("MoveTowards should not overshoot: got %v, want 10", got)
	}
	if got := MoveTowards(10, 0, 4); got != 6 {
		t.Errorf("MoveTowards(10,0,4) = %v, want 6", got)
	}
	// Negative maxDelta pushes away from the target, on either side of it.
	if got := MoveTowards(5, 10, -2); got != 3 {
		t.Errorf("MoveTowards(5,10,-2) = %v, want 3", got)
	}
	if got := MoveTowards(5, 2, -3); got != 8 {
		t.Errorf("MoveTowards(5,2,-3) = %v, want 8", got)
	}
}

func TestSmoothDampConverges(t *testing.T) {
	current, velocity := 0.0, 0.0
	const target = 10.0
	const dt = 1.0 / 60

	prev := current
	for i := 0; i < 600; i++ {
		current = SmoothDamp(current, target, &velocity, 0.3, 0, dt)
		if current > target+tol {
			t.Fatalf("overshot target at step %d: %v", i, current)
		}
		if current < prev-tol {
			t.Fatalf("moved backwards at step %d: %v -> %v", i, prev, current)
		}
		prev = current
	}
	if math.Abs(current-target) > 0.01 {
		t.Errorf("did not converge: %v, want ~%v", current, target)
	}
}

func TestSmoothDampMaxSpeed(t *testing.T) {
	current, velocity := 0.0, 0.0
	const dt = 1.0 / 60

	// With a speed cap the first frame cannot move further than maxSpeed*dt
	// would ever allow; generously bound it at twice that.
	got := SmoothDamp(current, 1000, &velocity, 0.1, 5, dt)
	if got-current > 2*5*dt {
		t.Errorf("first frame moved %v, want <= %v", got-current, 2*5*dt)
	}
	_ = velocity
}

func TestSmoothDampZeroDelta(t *testing.T) {
	velocity := 3.0
	if got := SmoothDamp(1, 10, &velocity, 0.3, 0, 0); got != 1 {
		t.Errorf("dt=0 should return current unchanged, got %v", got)
	}
	if velocity != 3.0 {
		t.Errorf("dt=0 should leave velocity unchanged, got %v", velocity)
	}
}
