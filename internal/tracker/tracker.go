package tracker

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/pacing"
	"github.com/Tiliavir/exercise-for-good/internal/timecalc"
)

const (
	DefaultMinTarget   = 70
	DefaultMaxTarget   = 230
	DefaultRestWeekday = time.Sunday
)

var (
	// ErrRestDay is returned when repetitions are logged on a rest day.
	ErrRestDay = errors.New("today is a rest day")
	// ErrFutureMonth is returned when listing a month that has not started.
	ErrFutureMonth = errors.New("month is in the future")
	// ErrPastDay is returned when logging to a record whose day has ended.
	ErrPastDay = errors.New("day record is read-only once the day has ended")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=tracker_test

// Store persists daily records keyed by calendar day. Fetch returns nil and
// no error when no record exists for the day.
type Store interface {
	Fetch(day time.Time) (*model.DailyRecord, error)
	Insert(r *model.DailyRecord)
	Save() error
	LoadMonth(t time.Time) ([]model.DailyRecord, error)
}

// Options configures a Tracker. Start from DefaultOptions; only IntN and
// Now fall back to defaults when left nil.
type Options struct {
	MinTarget   int
	MaxTarget   int
	RestWeekday time.Weekday
	StartHour   int
	EndHour     int
	// IntN returns a uniform value in [0, n). Defaults to math/rand/v2.
	IntN func(n int) int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Tracker owns the lifecycle of daily records: creating each day's record
// once, logging repetitions, and latching the completion celebration.
type Tracker struct {
	store Store
	opts  Options
}

// DefaultOptions draws targets from 70–230 with Sunday off and paces them
// over 8–21.
func DefaultOptions() Options {
	return Options{
		MinTarget:   DefaultMinTarget,
		MaxTarget:   DefaultMaxTarget,
		RestWeekday: DefaultRestWeekday,
		StartHour:   pacing.DefaultStartHour,
		EndHour:     pacing.DefaultEndHour,
	}
}

func New(store Store, opts Options) (*Tracker, error) {
	if opts.MinTarget < 0 || opts.MaxTarget < opts.MinTarget {
		return nil, fmt.Errorf("invalid target range %d–%d", opts.MinTarget, opts.MaxTarget)
	}
	// Validate the window once so later calculators only fail on the target.
	if _, err := pacing.New(0, opts.StartHour, opts.EndHour); err != nil {
		return nil, err
	}
	if opts.IntN == nil {
		opts.IntN = rand.Intn
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Tracker{store: store, opts: opts}, nil
}

// Open returns the record for the calendar day containing day, creating it
// on first access. A failing lookup is treated as a missing record.
func (t *Tracker) Open(day time.Time) (*model.DailyRecord, error) {
	date := timecalc.StartOfDay(day)

	r, err := t.store.Fetch(date)
	if err != nil {
		log.WithError(err).WithField("day", date.Format(model.DayLayout)).
			Warn("fetching day record failed, starting a new one")
		r = nil
	}
	if r != nil {
		return r, nil
	}

	r = t.newRecord(date)
	t.store.Insert(r)
	log.WithFields(log.Fields{
		"day":      r.Key(),
		"target":   r.Target,
		"rest_day": r.IsRestDay,
	}).Debug("created day record")

	if err := t.store.Save(); err != nil {
		return r, fmt.Errorf("saving new day record: %w", err)
	}
	return r, nil
}

// Today opens the record for the current day.
func (t *Tracker) Today() (*model.DailyRecord, error) {
	return t.Open(t.opts.Now())
}

// Now returns the tracker's clock reading.
func (t *Tracker) Now() time.Time {
	return t.opts.Now()
}

// IsCurrent reports whether r belongs to the current calendar day.
func (t *Tracker) IsCurrent(r model.DailyRecord) bool {
	return timecalc.SameDay(r.Date, t.opts.Now())
}

func (t *Tracker) newRecord(date time.Time) *model.DailyRecord {
	r := &model.DailyRecord{Date: date}
	if date.Weekday() == t.opts.RestWeekday {
		r.IsRestDay = true
		return r
	}
	r.Target = t.opts.MinTarget + t.opts.IntN(t.opts.MaxTarget-t.opts.MinTarget+1)
	return r
}

// Update is the outcome of logging repetitions.
type Update struct {
	Record model.DailyRecord
	// Celebrate is true only for the update that first reached the target.
	Celebrate bool
}

// Log applies delta to r and persists it. Rest days and days that have
// already ended reject any input.
func (t *Tracker) Log(r *model.DailyRecord, delta int) (Update, error) {
	if r.Date.Before(timecalc.StartOfDay(t.opts.Now())) {
		return Update{Record: *r}, ErrPastDay
	}
	if r.IsRestDay {
		return Update{Record: *r}, ErrRestDay
	}

	r.ApplyDelta(delta)

	celebrate := !r.Celebrated && r.Target > 0 && r.Completed >= r.Target
	if celebrate {
		r.Celebrated = true
	}

	log.WithFields(log.Fields{
		"day":       r.Key(),
		"delta":     delta,
		"completed": r.Completed,
	}).Debug("logged repetitions")

	if err := t.store.Save(); err != nil {
		return Update{Record: *r, Celebrate: celebrate}, fmt.Errorf("saving day record: %w", err)
	}
	return Update{Record: *r, Celebrate: celebrate}, nil
}

// Calculator returns the pacing calculator for r's target.
func (t *Tracker) Calculator(r model.DailyRecord) (pacing.Calculator, error) {
	return pacing.New(r.Target, t.opts.StartHour, t.opts.EndHour)
}

// Status is everything the day view shows about a record at a point in time.
type Status struct {
	Record   model.DailyRecord
	Badge    model.BadgeTier
	Expected int
	Fraction float64
	OnTrack  bool
	Message  string
}

// Status derives badge and pacing for r at the wall-clock time at.
func (t *Tracker) Status(r model.DailyRecord, at time.Time) (Status, error) {
	calc, err := t.Calculator(r)
	if err != nil {
		return Status{}, err
	}
	hour, minute := timecalc.HourMinute(at)
	return Status{
		Record:   r,
		Badge:    r.Badge(),
		Expected: calc.ExpectedProgress(hour, minute),
		Fraction: calc.ProgressFraction(r.Completed, hour, minute),
		OnTrack:  calc.IsOnTrack(r.Completed, hour, minute),
		Message:  calc.StatusMessage(r.Completed, hour, minute),
	}, nil
}

// Month lists the stored records of the month containing month. Months after
// the current one are rejected. A storage failure yields an empty listing.
func (t *Tracker) Month(month time.Time) ([]model.DailyRecord, error) {
	if timecalc.AfterMonth(month, t.opts.Now()) {
		return nil, ErrFutureMonth
	}
	records, err := t.store.LoadMonth(month)
	if err != nil {
		log.WithError(err).WithField("month", timecalc.MonthLabel(month)).
			Warn("loading month failed")
		return []model.DailyRecord{}, nil
	}
	return records, nil
}
