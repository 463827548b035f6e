package sway

// Mode selects how a primitive treats time that runs past either end of
// its duration.
type Mode int

const (
	// Clamp stops at either end. The zero value, and the default.
	Clamp Mode = iota
	// Loop wraps time past either end back into range, so the animation
	// repeats from the opposite end. Requires a positive duration.
	Loop
	// Yoyo reverses direction at either end, playing forward then
	// backward then forward again.
	Yoyo
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case Loop:
		return "Loop"
	case Yoyo:
		return "Yoyo"
	default:
		return "Clamp"
	}
}

// resolveTime maps a requested playback time onto [0, duration] under the
// given mode. reversed is the yoyo direction flag going in; the returned
// flag is the direction after the boundary handling. Clamp and Loop leave
// the flag untouched.
//
// Loop wraps by repeated subtraction/addition so that landing exactly on
// duration stays at duration; only overshoot wraps around. Termination is
// bounded by the number of whole durations in the overshoot. A
// non-positive duration cannot loop and resolves to 0.
func resolveTime(requested, duration float64, mode Mode, reversed bool) (float64, bool) {
	switch mode {
	case Loop:
		if duration <= 0 {
			return 0, reversed
		}
		for requested > duration {
			requested -= duration
		}
		for requested < 0 {
			requested += duration
		}
		return requested, reversed
	case Yoyo:
		if requested < 0 {
			return 0, false
		}
		if requested > duration {
			return duration, true
		}
		return requested, reversed
	default:
		if requested < 0 {
			return 0, reversed
		}
		if requested > duration {
			return duration, reversed
		}
		return requested, reversed
	}
}
