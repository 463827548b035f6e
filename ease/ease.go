// Package ease provides the easing curves used by sway's animation
// primitives, plus a handful of standalone smoothing interpolators.
//
// The catalog is a closed set: every curve is a [Curve] constant and is
// evaluated through [Curve.Ease]. Curves map normalized progress in [0, 1]
// to eased progress. All curves satisfy Ease(0) == 0 and Ease(1) == 1
// except [Nearest], which is constant 0, and the overshoot families
// ([InBack], [OutBack], [InOutBack], [InElastic], [OutElastic],
// [InOutElastic]) may leave [0, 1] strictly between the endpoints.
//
// The shapes match the standard easings.net reference curves.
//
// [SmoothStep], [SmootherStep], [MoveTowards], and [SmoothDamp] are not
// curves: they interpolate between arbitrary endpoints directly and are
// useful for camera follow, value chasing, and similar per-frame smoothing.
package ease

import "math"

// Curve identifies one easing curve from the fixed catalog. The zero value
// is [Linear], so an unconfigured sway primitive animates linearly.
type Curve int

const (
	// Linear is the identity curve: eased progress equals raw progress.
	Linear Curve = iota

	InSine
	OutSine
	InOutSine

	InQuad
	OutQuad
	InOutQuad

	InCubic
	OutCubic
	InOutCubic

	InQuart
	OutQuart
	InOutQuart

	InQuint
	OutQuint
	InOutQuint

	InExpo
	OutExpo
	InOutExpo

	InCirc
	OutCirc
	InOutCirc

	InBack
	OutBack
	InOutBack

	InElastic
	OutElastic
	InOutElastic

	InBounce
	OutBounce
	InOutBounce

	// Nearest is a step curve that returns 0 for every input. Combined
	// with a tween's endpoint rules the value holds at the start point
	// and snaps to the end exactly when the full duration elapses.
	// Useful for frame-snapping discrete content.
	Nearest
)

// Standard easing constants. c1 is the classic back-easing overshoot
// amount; the rest derive from it or from the easings.net reference.
const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
	bounceN1  = 7.5625
	bounceD1  = 2.75
)

var curveNames = [...]string{
	Linear:       "Linear",
	InSine:       "InSine",
	OutSine:      "OutSine",
	InOutSine:    "InOutSine",
	InQuad:       "InQuad",
	OutQuad:      "OutQuad",
	InOutQuad:    "InOutQuad",
	InCubic:      "InCubic",
	OutCubic:     "OutCubic",
	InOutCubic:   "InOutCubic",
	InQuart:      "InQuart",
	OutQuart:     "OutQuart",
	InOutQuart:   "InOutQuart",
	InQuint:      "InQuint",
	OutQuint:     "OutQuint",
	InOutQuint:   "InOutQuint",
	InExpo:       "InExpo",
	OutExpo:      "OutExpo",
	InOutExpo:    "InOutExpo",
	InCirc:       "InCirc",
	OutCirc:      "OutCirc",
	InOutCirc:    "InOutCirc",
	InBack:       "InBack",
	OutBack:      "OutBack",
	InOutBack:    "InOutBack",
	InElastic:    "InElastic",
	OutElastic:   "OutElastic",
	InOutElastic: "InOutElastic",
	InBounce:     "InBounce",
	OutBounce:    "OutBounce",
	InOutBounce:  "InOutBounce",
	Nearest:      "Nearest",
}

// Curves lists every curve in the catalog, in declaration order.
// Handy for gallery UIs and exhaustive tests.
var Curves = func() []Curve {
	cs := make([]Curve, len(curveNames))
	for i := range cs {
		cs[i] = Curve(i)
	}
	return cs
}()

// String returns the curve's name, e.g. "InOutQuad".
func (c Curve) String() string {
	if c < 0 || int(c) >= len(curveNames) {
		return "Linear"
	}
	return curveNames[c]
}

// Ease evaluates the curve at x. x is expected in [0, 1] but is not
// clamped; callers feeding values outside that range get the curve's
// natural extension. Unknown Curve values evaluate as [Linear].
func (c Curve) Ease(x float64) float64 {
	switch c {
	case InSine:
		return 1 - math.Cos((x*math.Pi)/2)
	case OutSine:
		return math.Sin((x * math.Pi) / 2)
	case InOutSine:
		return -(math.Cos(math.Pi*x) - 1) / 2

	case InQuad:
		return x * x
	case OutQuad:
		return 1 - (1-x)*(1-x)
	case InOutQuad:
		if x < 0.5 {
			return 2 * x * x
		}
		return 1 - (-2*x+2)*(-2*x+2)/2

	case InCubic:
		return x * x * x
	case OutCubic:
		return 1 - (1-x)*(1-x)*(1-x)
	case InOutCubic:
		if x < 0.5 {
			return 4 * x * x * x
		}
		return 1 - (-2*x+2)*(-2*x+2)*(-2*x+2)/2

	case InQuart:
		return x * x * x * x
	case OutQuart:
		return 1 - (1-x)*(1-x)*(1-x)*(1-x)
	case InOutQuart:
		if x < 0.5 {
			return 8 * x * x * x * x
		}
		return 1 - (-2*x+2)*(-2*x+2)*(-2*x+2)*(-2*x+2)/2

	case InQuint:
		return x * x * x * x * x
	case OutQuint:
		return 1 - (1-x)*(1-x)*(1-x)*(1-x)*(1-x)
	case InOutQuint:
		if x < 0.5 {
			return 16 * x * x * x * x * x
		}
		return 1 - (-2*x+2)*(-2*x+2)*(-2*x+2)*(-2*x+2)*(-2*x+2)/2

	case InExpo:
		if x == 0 {
			return 0
		}
		return math.Pow(2, 10*x-10)
	case OutExpo:
		if x == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*x)
	case InOutExpo:
		if x == 0 {
			return 0
		}
		if x == 1 {
			return 1
		}
		if x < 0.5 {
			return math.Pow(2, 20*x-10) / 2
		}
		return (2 - math.Pow(2, -20*x+10)) / 2

	case InCirc:
		return 1 - math.Sqrt(1-x*x)
	case OutCirc:
		return math.Sqrt(1 - (x-1)*(x-1))
	case InOutCirc:
		if x < 0.5 {
			return (1 - math.Sqrt(1-(2*x)*(2*x))) / 2
		}
		return (math.Sqrt(1-(-2*x+2)*(-2*x+2)) + 1) / 2

	case InBack:
		return backC3*x*x*x - backC1*x*x
	case OutBack:
		return 1 + backC3*(x-1)*(x-1)*(x-1) + backC1*(x-1)*(x-1)
	case InOutBack:
		if x < 0.5 {
			return ((2 * x) * (2 * x) * ((backC2+1)*2*x - backC2)) / 2
		}
		return ((2*x-2)*(2*x-2)*((backC2+1)*(x*2-2)+backC2) + 2) / 2

	case InElastic:
		if x == 0 {
			return 0
		}
		if x == 1 {
			return 1
		}
		return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*elasticC4)
	case OutElastic:
		if x == 0 {
			return 0
		}
		if x == 1 {
			return 1
		}
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*elasticC4) + 1
	case InOutElastic:
		if x == 0 {
			return 0
		}
		if x == 1 {
			return 1
		}
		if x < 0.5 {
			return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticC5)) / 2
		}
		return (math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticC5))/2 + 1

	case InBounce:
		return 1 - outBounce(1-x)
	case OutBounce:
		return outBounce(x)
	case InOutBounce:
		if x < 0.5 {
			return (1 - outBounce(1-2*x)) / 2
		}
		return (1 + outBounce(2*x-1)) / 2

	case Nearest:
		return 0

	default:
		return x
	}
}

func outBounce(x float64) float64 {
	if x < 1/bounceD1 {
		return bounceN1 * x * x
	}
	if x < 2/bounceD1 {
		x -= 1.5 / bounceD1
		return bounceN1*x*x + 0.75
	}
	if x < 2.5/bounceD1 {
		x -= 2.25 / bounceD1
		return bounceN1*x*x + 0.9375
	}
	x -= 2.625 / bounceD1
	return bounceN1*x*x + 0.984375
}

// SmoothStep interpolates from a to b with cubic Hermite smoothing
// (3t² − 2t³). t is clamped to [0, 1], so the result never overshoots.
func SmoothStep(a, b, t float64) float64 {
	t = clamp01(t)
	t = t * t * (3 - 2*t)
	return a + (b-a)*t
}

// SmootherStep interpolates from a to b with Perlin's quintic smoothing
// (6t⁵ − 15t⁴ + 10t³), which has zero first and second derivatives at
// both endpoints. t is clamped to [0, 1].
func SmootherStep(a, b, t float64) float64 {
	t = clamp01(t)
	t = t * t * t * (t*(t*6-15) + 10)
	return a + (b-a)*t
}

// MoveTowards steps current toward target by at most maxDelta and never
// overshoots. A negative maxDelta pushes current away from target.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(1, target-current)*maxDelta
}

// SmoothDamp moves current toward target like a critically damped spring:
// it decelerates into the target without overshooting. velocity carries
// state between calls and must point to the same variable each frame.
// smoothTime is roughly the time to reach the target; maxSpeed caps the
// approach speed (maxSpeed <= 0 means unlimited); dt is the elapsed time
// for this frame.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	if smoothTime < 1e-4 {
		smoothTime = 1e-4
	}

	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	goal := target
	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		if change > maxChange {
			change = maxChange
		} else if change < -maxChange {
			change = -maxChange
		}
	}
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// Clip at the goal if the spring carried us past it.
	if (goal > current) == (out > goal) {
		out = goal
		*velocity = 0
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
