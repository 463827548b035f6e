package sway

// Steps counts through the integers From..To, advancing one whole step
// each time the accumulated time crosses StepDuration. Useful for
// sprite-sheet frames, countdowns, and other discrete content that the
// continuous primitives would blur.
//
//	s := sway.NewSteps(0, 7, 0.1) // 8 frames at 10 fps
//	s.Mode = sway.Loop
//	// each frame:
//	frame := s.Update(dt)
//
// The same playback modes apply, expressed as step arithmetic: Clamp
// pins at either endpoint, Loop wraps to the opposite endpoint carrying
// leftover time, and Yoyo pins like Clamp but reverses so later updates
// count the other way. A single instance must not be mutated from
// multiple goroutines.
type Steps struct {
	// From and To are the inclusive integer endpoints. From <= To is
	// expected; the counter starts at From.
	From, To int
	// StepDuration is the time cost of one step in seconds. Must be
	// positive; otherwise Update does not advance.
	StepDuration float64
	// Mode is the boundary policy. Defaults to Clamp.
	Mode Mode

	current  int
	elapsed  float64
	reversed bool
}

// NewSteps creates a clamped stepper over from..to inclusive with the
// given per-step duration in seconds, positioned at from.
func NewSteps(from, to int, stepDuration float64) *Steps {
	return &Steps{From: from, To: to, StepDuration: stepDuration, current: from}
}

// Update accumulates dt seconds (negative dt rewinds) and returns the
// current step after crossing as many step boundaries as the accumulated
// time covers. One call performs at most one boundary reversal under
// Yoyo and discards surplus time at a Clamp boundary.
func (s *Steps) Update(dt float64) int {
	if s.StepDuration <= 0 {
		return s.Value()
	}
	if s.reversed {
		dt = -dt
	}
	s.elapsed += dt

	for {
		if s.elapsed > s.StepDuration {
			if s.current < s.To {
				s.elapsed -= s.StepDuration
				s.current++
				continue
			}
			switch s.Mode {
			case Loop:
				s.elapsed -= s.StepDuration
				s.current = s.From
				continue
			case Yoyo:
				s.elapsed = s.StepDuration
				s.reversed = !s.reversed
			default:
				s.elapsed = s.StepDuration
			}
		} else if s.elapsed < 0 {
			if s.current > s.From {
				s.elapsed += s.StepDuration
				s.current--
				continue
			}
			switch s.Mode {
			case Loop:
				s.elapsed += s.StepDuration
				s.current = s.To
				continue
			case Yoyo:
				s.elapsed = 0
				s.reversed = !s.reversed
			default:
				s.elapsed = 0
			}
		}
		return s.Value()
	}
}

// Value returns the current step, clamped into [From, To] defensively.
func (s *Steps) Value() int {
	if s.current < s.From {
		return s.From
	}
	if s.current > s.To {
		return s.To
	}
	return s.current
}

// Reset returns the counter to From, zeroes the accumulated time, and
// clears the yoyo direction.
func (s *Steps) Reset() {
	s.current = s.From
	s.elapsed = 0
	s.reversed = false
}
