package model

import (
	"math"
	"time"
)

// DayLayout is the date format used as the key of a DailyRecord.
const DayLayout = "2006-01-02"

// DailyRecord is the push-up log for one calendar day.
type DailyRecord struct {
	// Date is local midnight of the day the record belongs to.
	Date      time.Time `json:"date"`
	Target    int       `json:"target"`
	Completed int       `json:"completed"`
	IsRestDay bool      `json:"is_rest_day"`
	// Celebrated latches once Completed has first reached Target.
	Celebrated bool `json:"celebrated"`
}

// Key returns the calendar day identity of the record, e.g. "2026-10-15".
func (r DailyRecord) Key() string {
	return r.Date.Format(DayLayout)
}

// ProgressRatio is Completed/Target, or 0 when there is no target.
// Values above 1 mean the target was exceeded.
func (r DailyRecord) ProgressRatio() float64 {
	if r.Target <= 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Target)
}

// Badge returns the tier earned by the record's current progress.
func (r DailyRecord) Badge() BadgeTier {
	return BadgeFor(r.ProgressRatio())
}

// ApplyDelta adds delta to Completed, clamping the result at zero. There is
// no upper bound other than saturating at math.MaxInt.
func (r *DailyRecord) ApplyDelta(delta int) {
	switch {
	case delta > 0 && r.Completed > math.MaxInt-delta:
		r.Completed = math.MaxInt
	case delta < 0 && r.Completed+delta < 0:
		// Completed >= 0, so the sum cannot wrap when delta is negative.
		r.Completed = 0
	default:
		r.Completed += delta
	}
}
