package model

import "fmt"

// BadgeTier is an achievement level derived from a progress ratio. The
// numeric value is the percentage the tier stands for.
type BadgeTier int

const (
	BadgeNone         BadgeTier = 0
	BadgeQuarter      BadgeTier = 25
	BadgeHalf         BadgeTier = 50
	BadgeThreeQuarter BadgeTier = 75
	BadgeComplete     BadgeTier = 100
)

// EarnableBadges lists the tiers above BadgeNone in ascending order.
var EarnableBadges = []BadgeTier{BadgeQuarter, BadgeHalf, BadgeThreeQuarter, BadgeComplete}

// BadgeFor maps a progress ratio to its tier. Ratios above 1 are still
// BadgeComplete.
func BadgeFor(ratio float64) BadgeTier {
	switch {
	case ratio >= 1.0:
		return BadgeComplete
	case ratio >= 0.75:
		return BadgeThreeQuarter
	case ratio >= 0.5:
		return BadgeHalf
	case ratio >= 0.25:
		return BadgeQuarter
	default:
		return BadgeNone
	}
}

// Earned reports whether holding tier b means level has been reached.
func (b BadgeTier) Earned(level BadgeTier) bool {
	return b >= level
}

// String returns the display text, "" for BadgeNone.
func (b BadgeTier) String() string {
	if b == BadgeNone {
		return ""
	}
	return fmt.Sprintf("%d%%", int(b))
}
