package pacing

import (
	"errors"
	"fmt"
)

const (
	// DefaultStartHour is the first hour of the active window.
	DefaultStartHour = 8
	// DefaultEndHour is the exclusive end of the active window.
	DefaultEndHour = 21
)

// ErrInvalidConfiguration is returned when a Calculator cannot be built from
// the given target and hours.
var ErrInvalidConfiguration = errors.New("invalid pacing configuration")

// Calculator maps a clock time to the number of repetitions that should be
// done by then, spreading the daily target evenly over the active window
// [StartHour, EndHour).
type Calculator struct {
	dailyTarget int
	startHour   int
	endHour     int
}

// New creates a Calculator. It fails with ErrInvalidConfiguration if the
// target is negative or the window is empty or outside 0–24.
func New(dailyTarget, startHour, endHour int) (Calculator, error) {
	if dailyTarget < 0 {
		return Calculator{}, fmt.Errorf("%w: daily target %d is negative", ErrInvalidConfiguration, dailyTarget)
	}
	if startHour < 0 || endHour > 24 {
		return Calculator{}, fmt.Errorf("%w: active hours %d–%d outside 0–24", ErrInvalidConfiguration, startHour, endHour)
	}
	if endHour <= startHour {
		return Calculator{}, fmt.Errorf("%w: end hour %d not after start hour %d", ErrInvalidConfiguration, endHour, startHour)
	}
	return Calculator{dailyTarget: dailyTarget, startHour: startHour, endHour: endHour}, nil
}

// NewDefault creates a Calculator for the 8–21 window.
func NewDefault(dailyTarget int) (Calculator, error) {
	return New(dailyTarget, DefaultStartHour, DefaultEndHour)
}

func (c Calculator) DailyTarget() int { return c.dailyTarget }

func (c Calculator) StartHour() int { return c.startHour }

func (c Calculator) EndHour() int { return c.endHour }

// TotalActiveMinutes is the length of the active window in minutes.
func (c Calculator) TotalActiveMinutes() int {
	return (c.endHour - c.startHour) * 60
}

// RepsPerMinute is the pace needed to hit the target exactly at EndHour.
func (c Calculator) RepsPerMinute() float64 {
	return float64(c.dailyTarget) / float64(c.TotalActiveMinutes())
}

// ExpectedProgress returns the repetitions expected by hour:minute. It is 0
// before the window opens and the full target once it has closed. Inside the
// window the value is rounded half to even.
func (c Calculator) ExpectedProgress(hour, minute int) int {
	if hour < c.startHour {
		return 0
	}
	if hour >= c.endHour {
		return c.dailyTarget
	}
	elapsed := (hour-c.startHour)*60 + minute
	return roundHalfEven(elapsed*c.dailyTarget, c.TotalActiveMinutes())
}

// ProgressFraction returns completed/expected capped at 1.0. When nothing is
// expected yet any logged repetition counts as full progress.
func (c Calculator) ProgressFraction(completed, hour, minute int) float64 {
	expected := c.ExpectedProgress(hour, minute)
	if expected <= 0 {
		if completed > 0 {
			return 1.0
		}
		return 0.0
	}
	return min(float64(completed)/float64(expected), 1.0)
}

// IsOnTrack reports whether completed has kept up with ExpectedProgress.
func (c Calculator) IsOnTrack(completed, hour, minute int) bool {
	return completed >= c.ExpectedProgress(hour, minute)
}

// StatusMessage describes the pacing verdict for display.
func (c Calculator) StatusMessage(completed, hour, minute int) string {
	switch {
	case hour < c.startHour:
		return fmt.Sprintf("workout starts at %d:00", c.startHour)
	case hour >= c.endHour:
		return fmt.Sprintf("daily target %d (complete)", c.dailyTarget)
	}
	diff := completed - c.ExpectedProgress(hour, minute)
	if diff >= 0 {
		return fmt.Sprintf("%d ahead", diff)
	}
	return fmt.Sprintf("behind by %d", -diff)
}

// roundHalfEven divides n by d (both non-negative, d > 0) rounding to the
// nearest integer, ties to even.
func roundHalfEven(n, d int) int {
	q, r := n/d, n%d
	switch {
	case 2*r > d:
		return q + 1
	case 2*r == d && q%2 == 1:
		return q + 1
	}
	return q
}
