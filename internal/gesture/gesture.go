package gesture

import (
	"fmt"
	"math"
)

// Kind identifies a discrete gesture.
type Kind string

const (
	Tap          Kind = "tap"
	TwoFingerTap Kind = "two-finger-tap"
)

const (
	tapDelta = 10

	// Rotation must accumulate past this many radians before a step fires.
	rotationThreshold = 0.2
	fastStep          = 0.3
	mediumStep        = 0.1
)

// ParseKind maps a gesture name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Tap, TwoFingerTap:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown gesture %q (want %q or %q)", s, Tap, TwoFingerTap)
}

// Delta returns the repetition change a discrete gesture stands for.
func Delta(k Kind) int {
	if k == TwoFingerTap {
		return -tapDelta
	}
	return tapDelta
}

// Rotation turns a stream of angles around the screen centre into deltas.
// Clockwise rotation adds repetitions, counter-clockwise removes them, and
// faster steps count more.
type Rotation struct {
	started     bool
	lastAngle   float64
	accumulated float64
}

// Step feeds the next angle in radians, as returned by math.Atan2. It reports
// a delta once enough rotation has accumulated.
func (r *Rotation) Step(angle float64) (int, bool) {
	if !r.started {
		r.started = true
		r.lastAngle = angle
		return 0, false
	}

	diff := angle - r.lastAngle
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	r.lastAngle = angle
	r.accumulated += diff

	if math.Abs(r.accumulated) <= rotationThreshold {
		return 0, false
	}

	inc := stepIncrement(math.Abs(diff))
	if r.accumulated < 0 {
		inc = -inc
	}
	r.accumulated = 0
	return inc, true
}

// End finishes the drag and clears all tracking state.
func (r *Rotation) End() {
	*r = Rotation{}
}

func stepIncrement(speed float64) int {
	switch {
	case speed > fastStep:
		return 10
	case speed > mediumStep:
		return 5
	default:
		return 1
	}
}
