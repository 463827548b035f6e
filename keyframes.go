package sway

import (
	"sort"

	"github.com/phanxgames/sway/ease"
)

// Keyframe is a value anchored at an absolute time within a [Keyframes]
// sequence. Time is in seconds from the start of the sequence.
type Keyframe struct {
	Value float64
	Time  float64
}

// Keyframes interpolates across an ordered list of timestamped values.
// Each frame the current time is bracketed by two keyframes and the value
// is eased between them.
//
//	k := sway.NewKeyframes(2.0)
//	k.InsertEvenly(0, 10, 5, 20)
//	k.Mode = sway.Loop
//	// each frame:
//	v := k.Update(dt)
//
// Keyframes may be inserted in any time order; the sequence keeps itself
// sorted ascending by time, and keyframes sharing a timestamp keep their
// insertion order. The sequence owns its keyframe storage exclusively.
//
// An empty sequence evaluates to 0 and removal from an empty sequence
// returns a zero Keyframe; nothing here faults. A single instance must
// not be mutated from multiple goroutines.
type Keyframes struct {
	// Duration is the total playback time in seconds. Keyframe times are
	// expected to lie within [0, Duration].
	Duration float64
	// Mode is the playback policy at the ends. Defaults to Clamp.
	Mode Mode
	// Curve shapes the interpolation between each bracketing pair.
	// Defaults to ease.Linear.
	Curve ease.Curve

	frames   []Keyframe
	elapsed  float64
	reversed bool
}

// NewKeyframes creates an empty clamped, linear sequence with the given
// duration in seconds.
func NewKeyframes(duration float64) *Keyframes {
	return &Keyframes{Duration: duration}
}

// Insert adds one or more keyframes, keeping the sequence sorted
// ascending by time. Insertion is stable: a keyframe inserted at an
// already-occupied time goes after the existing ones.
func (k *Keyframes) Insert(frames ...Keyframe) {
	for _, f := range frames {
		i := sort.Search(len(k.frames), func(i int) bool {
			return k.frames[i].Time > f.Time
		})
		k.frames = append(k.frames, Keyframe{})
		copy(k.frames[i+1:], k.frames[i:])
		k.frames[i] = f
	}
}

// InsertEvenly inserts the given values spaced uniformly across the
// sequence's duration: the first at exactly time 0, the last at exactly
// Duration. A single value is placed at time 0.
func (k *Keyframes) InsertEvenly(values ...float64) {
	n := len(values)
	switch n {
	case 0:
		return
	case 1:
		k.Insert(Keyframe{Value: values[0]})
		return
	}
	step := k.Duration / float64(n-1)
	for i, v := range values {
		t := float64(i) * step
		switch i {
		case 0:
			t = 0
		case n - 1:
			t = k.Duration
		}
		k.Insert(Keyframe{Value: v, Time: t})
	}
}

// RemoveAt removes and returns the keyframe at index i. Out-of-range
// indices return a zero Keyframe and leave the sequence unchanged.
func (k *Keyframes) RemoveAt(i int) Keyframe {
	if i < 0 || i >= len(k.frames) {
		return Keyframe{}
	}
	f := k.frames[i]
	k.frames = append(k.frames[:i], k.frames[i+1:]...)
	return f
}

// RemoveLast removes and returns the final keyframe, or a zero Keyframe
// if the sequence is empty.
func (k *Keyframes) RemoveLast() Keyframe {
	return k.RemoveAt(len(k.frames) - 1)
}

// Clear removes every keyframe. Elapsed time is untouched.
func (k *Keyframes) Clear() {
	k.frames = k.frames[:0]
}

// Count returns the number of keyframes.
func (k *Keyframes) Count() int {
	return len(k.frames)
}

// At returns the keyframe at index i, or a zero Keyframe if out of range.
func (k *Keyframes) At(i int) Keyframe {
	if i < 0 || i >= len(k.frames) {
		return Keyframe{}
	}
	return k.frames[i]
}

// Update advances the sequence by dt seconds (negative dt rewinds) and
// returns the current value.
func (k *Keyframes) Update(dt float64) float64 {
	if k.reversed {
		dt = -dt
	}
	k.elapsed, k.reversed = resolveTime(k.elapsed+dt, k.Duration, k.Mode, k.reversed)
	return k.Value()
}

// Value returns the current interpolated value without advancing time.
// An empty sequence evaluates to 0. At or before the start the value is
// the first keyframe's; at or past the end it is the last keyframe's.
// Between, the value eases from the keyframe preceding the current time
// to the first keyframe at or after it. Two keyframes sharing a
// timestamp resolve to the later one's value.
func (k *Keyframes) Value() float64 {
	if len(k.frames) == 0 {
		return 0
	}
	if k.elapsed <= 0 {
		return k.frames[0].Value
	}
	if k.elapsed >= k.Duration {
		return k.frames[len(k.frames)-1].Value
	}
	for i, cur := range k.frames {
		if cur.Time < k.elapsed {
			continue
		}
		if i == 0 {
			return cur.Value
		}
		prev := k.frames[i-1]
		if cur.Time == prev.Time {
			return cur.Value
		}
		weight := (k.elapsed - prev.Time) / (cur.Time - prev.Time)
		return prev.Value + (cur.Value-prev.Value)*k.Curve.Ease(weight)
	}
	// Every keyframe lies before the current time.
	return k.frames[len(k.frames)-1].Value
}

// Elapsed returns the current playback time in [0, Duration].
func (k *Keyframes) Elapsed() float64 {
	return k.elapsed
}

// SetElapsed seeks to the given playback time, resolved through the
// playback mode exactly as Update resolves it.
func (k *Keyframes) SetElapsed(elapsed float64) {
	k.elapsed, k.reversed = resolveTime(elapsed, k.Duration, k.Mode, k.reversed)
}

// Progress returns elapsed time normalized to [0, 1], or 0 if Duration
// is zero.
func (k *Keyframes) Progress() float64 {
	if k.Duration == 0 {
		return 0
	}
	return k.elapsed / k.Duration
}

// SetProgress seeks to the given normalized progress.
func (k *Keyframes) SetProgress(p float64) {
	k.SetElapsed(p * k.Duration)
}

// Started reports whether any time has elapsed. Meaningful under Clamp.
func (k *Keyframes) Started() bool {
	return k.elapsed > 0
}

// Finished reports whether the full duration has elapsed. Meaningful
// under Clamp.
func (k *Keyframes) Finished() bool {
	return k.elapsed >= k.Duration
}

// Reset rewinds to the start and clears the yoyo direction. Keyframes
// are untouched.
func (k *Keyframes) Reset() {
	k.elapsed = 0
	k.reversed = false
}
