package sway

import "github.com/phanxgames/sway/ease"

// Tween interpolates a float64 between From and To over Duration seconds,
// shaped by an easing curve and a playback [Mode].
//
// Call Update(dt) once per frame with the frame's elapsed seconds; it
// returns the current value. The zero value of Tween is usable: it clamps,
// eases linearly, and holds at From until given a positive Duration.
//
//	tw := sway.NewTween(0, 100, 1.5)
//	tw.Curve = ease.OutBounce
//	tw.Mode = sway.Yoyo
//	// each frame:
//	x := tw.Update(dt)
//
// A Tween never fails: degenerate parameters (zero duration, reversed
// endpoints) resolve to defined endpoint values rather than faults. A
// single instance must not be mutated from multiple goroutines.
type Tween struct {
	// From and To are the endpoint values at progress 0 and 1.
	From, To float64
	// Duration is the total playback time in seconds. May be zero, in
	// which case the tween evaluates to From. Must be positive for Loop.
	Duration float64
	// Mode is the playback policy at the ends. Defaults to Clamp.
	Mode Mode
	// Curve shapes the interpolation. Defaults to ease.Linear.
	Curve ease.Curve

	elapsed  float64
	reversed bool
}

// NewTween creates a clamped, linear tween from one value to another over
// the given duration in seconds. Set Mode and Curve on the result to
// change playback or easing.
func NewTween(from, to, duration float64) *Tween {
	return &Tween{From: from, To: to, Duration: duration}
}

// Update advances the tween by dt seconds (negative dt rewinds) and
// returns the current value. Under Yoyo the direction flag decides
// whether dt moves time forward or backward.
func (t *Tween) Update(dt float64) float64 {
	if t.reversed {
		dt = -dt
	}
	t.elapsed, t.reversed = resolveTime(t.elapsed+dt, t.Duration, t.Mode, t.reversed)
	return t.Value()
}

// Value returns the current interpolated value without advancing time.
// At or before the start it is exactly From; at or past the end it is
// exactly To, regardless of curve.
func (t *Tween) Value() float64 {
	if t.elapsed <= 0 {
		return t.From
	}
	if t.elapsed >= t.Duration {
		return t.To
	}
	return t.From + (t.To-t.From)*t.Curve.Ease(t.elapsed/t.Duration)
}

// Elapsed returns the current playback time in [0, Duration].
func (t *Tween) Elapsed() float64 {
	return t.elapsed
}

// SetElapsed seeks to the given playback time. The time is resolved
// through the playback mode, so it always lands in [0, Duration] and
// updates the yoyo direction the same way Update would.
func (t *Tween) SetElapsed(elapsed float64) {
	t.elapsed, t.reversed = resolveTime(elapsed, t.Duration, t.Mode, t.reversed)
}

// Progress returns elapsed time normalized to [0, 1], or 0 if Duration
// is zero.
func (t *Tween) Progress() float64 {
	if t.Duration == 0 {
		return 0
	}
	return t.elapsed / t.Duration
}

// SetProgress seeks to the given normalized progress. Equivalent to
// SetElapsed(p * Duration).
func (t *Tween) SetProgress(p float64) {
	t.SetElapsed(p * t.Duration)
}

// Started reports whether any time has elapsed. Meaningful under Clamp;
// under Loop and Yoyo it fluctuates as time wraps.
func (t *Tween) Started() bool {
	return t.elapsed > 0
}

// Finished reports whether the full duration has elapsed. Meaningful
// under Clamp; under Loop and Yoyo it fluctuates as time wraps.
func (t *Tween) Finished() bool {
	return t.elapsed >= t.Duration
}

// Reset rewinds to the start and clears the yoyo direction.
func (t *Tween) Reset() {
	t.elapsed = 0
	t.reversed = false
}
