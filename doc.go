// Package sway is a small animation-interpolation library: it computes
// time-driven values between endpoints using easing curves and
// clamp/loop/yoyo playback, without owning a game loop.
//
// Sway provides three primitives. [Tween] interpolates a float64 between
// two endpoints. [Keyframes] interpolates across an ordered sequence of
// timestamped values. [Steps] counts through whole integers as time
// crosses per-step thresholds, for sprite frames and other discrete
// content. All three share the same playback modes ([Clamp], [Loop],
// [Yoyo]) and the easing catalog in [github.com/phanxgames/sway/ease].
//
// # Quick start
//
// Construct a primitive, then feed it your frame delta each update:
//
//	tw := sway.NewTween(0, 100, 1.5)
//	tw.Curve = ease.OutBounce
//
//	// inside your game loop:
//	x := tw.Update(dt)
//
// Sway never calls you back and never runs its own clock: when and how
// Update is invoked is entirely the caller's business, which makes the
// primitives trivial to drive from Ebitengine's Update, a UI toolkit's
// frame callback, or a simulation step.
//
// # Playback modes
//
// Every primitive carries a [Mode]. Clamp stops at either end and is the
// mode under which [Tween.Finished] is meaningful. Loop wraps time past
// either end back into range. Yoyo reverses direction at the ends, so
// the value ping-pongs forever.
//
// # Guarantees
//
// The primitives are pure computation with a permissive, never-failing
// contract: empty sequences, zero durations, and out-of-range indices
// resolve to documented fallback values instead of errors or panics, so
// a frame callback can never be interrupted mid-frame. Update on every
// primitive allocates nothing.
//
// Each instance is a self-contained value meant to be owned by one
// caller context; mutating one instance from multiple goroutines is
// undefined.
//
// Runnable Ebitengine demos live under examples/.
package sway
