package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/pacing"
	"github.com/Tiliavir/exercise-for-good/internal/storage"
	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

var (
	thursday = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	sunday   = time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)
)

func fixedIntN(v int) func(int) int {
	return func(n int) int { return v % n }
}

func withIntN(v int) func(*tracker.Options) {
	return func(o *tracker.Options) { o.IntN = fixedIntN(v) }
}

// withClock makes the tracker read the time from *now.
func withClock(now *time.Time) func(*tracker.Options) {
	return func(o *tracker.Options) { o.Now = func() time.Time { return *now } }
}

func newTracker(t *testing.T, store tracker.Store, mods ...func(*tracker.Options)) *tracker.Tracker {
	t.Helper()
	opts := tracker.DefaultOptions()
	opts.Now = func() time.Time { return thursday }
	for _, mod := range mods {
		mod(&opts)
	}
	tr, err := tracker.New(store, opts)
	require.NoError(t, err)
	return tr
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := tracker.DefaultOptions()
	opts.MinTarget, opts.MaxTarget = 200, 100
	_, err := tracker.New(storage.New(t.TempDir()), opts)
	assert.Error(t, err)

	opts = tracker.DefaultOptions()
	opts.StartHour, opts.EndHour = 20, 9
	_, err = tracker.New(storage.New(t.TempDir()), opts)
	assert.ErrorIs(t, err, pacing.ErrInvalidConfiguration)

	// Zero hours are an empty window, not a request for the defaults.
	opts = tracker.DefaultOptions()
	opts.StartHour, opts.EndHour = 0, 0
	_, err = tracker.New(storage.New(t.TempDir()), opts)
	assert.ErrorIs(t, err, pacing.ErrInvalidConfiguration)
}

func TestZeroTargetRangeIsHonoured(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()), func(o *tracker.Options) {
		o.MinTarget, o.MaxTarget = 0, 0
	})
	r, err := tr.Open(thursday)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Target)
}

func TestOpenCreatesRecordOnce(t *testing.T) {
	base := t.TempDir()
	tr := newTracker(t, storage.New(base), withIntN(42))

	first, err := tr.Open(thursday)
	require.NoError(t, err)
	assert.Equal(t, 70+42, first.Target)
	assert.Equal(t, 0, first.Completed)
	assert.False(t, first.IsRestDay)
	assert.Equal(t, "2026-10-15", first.Key())
	assert.True(t, first.Date.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))

	// A fresh process with a different draw must see the stored target.
	tr = newTracker(t, storage.New(base), withIntN(7))
	second, err := tr.Open(thursday.Add(8 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestOpenTargetWithinRange(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()))
	for d := 0; d < 60; d++ {
		day := thursday.AddDate(0, 0, d)
		r, err := tr.Open(day)
		require.NoError(t, err)
		if r.IsRestDay {
			assert.Equal(t, 0, r.Target)
			continue
		}
		assert.GreaterOrEqual(t, r.Target, tracker.DefaultMinTarget)
		assert.LessOrEqual(t, r.Target, tracker.DefaultMaxTarget)
	}
}

func TestOpenRestDay(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()), withIntN(10))
	r, err := tr.Open(sunday)
	require.NoError(t, err)
	assert.True(t, r.IsRestDay)
	assert.Equal(t, 0, r.Target)

	tr = newTracker(t, storage.New(t.TempDir()), withIntN(10), func(o *tracker.Options) { o.RestWeekday = time.Thursday })
	r, err = tr.Open(sunday)
	require.NoError(t, err)
	assert.False(t, r.IsRestDay)
	assert.Equal(t, 80, r.Target)
}

func TestOpenFetchFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	tr := newTracker(t, store, withIntN(0))

	var inserted *model.DailyRecord
	gomock.InOrder(
		store.EXPECT().Fetch(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)).Return(nil, errors.New("disk on fire")),
		store.EXPECT().Insert(gomock.Any()).Do(func(r *model.DailyRecord) { inserted = r }),
		store.EXPECT().Save().Return(nil),
	)

	r, err := tr.Open(thursday)
	require.NoError(t, err)
	assert.Same(t, inserted, r)
	assert.Equal(t, 70, r.Target)
}

func TestOpenSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	tr := newTracker(t, store)

	store.EXPECT().Fetch(gomock.Any()).Return(nil, nil)
	store.EXPECT().Insert(gomock.Any())
	store.EXPECT().Save().Return(errors.New("read-only"))

	r, err := tr.Open(thursday)
	assert.Error(t, err)
	assert.NotNil(t, r)
}

func TestOpenReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	tr := newTracker(t, store)

	existing := &model.DailyRecord{Date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), Target: 99, Completed: 12}
	store.EXPECT().Fetch(gomock.Any()).Return(existing, nil)

	r, err := tr.Open(thursday)
	require.NoError(t, err)
	assert.Same(t, existing, r)
}

func TestLogClampsAndPersists(t *testing.T) {
	base := t.TempDir()
	tr := newTracker(t, storage.New(base), withIntN(30))

	r, err := tr.Open(thursday)
	require.NoError(t, err)

	u, err := tr.Log(r, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, u.Record.Completed)

	u, err = tr.Log(r, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, u.Record.Completed)

	_, err = tr.Log(r, 40)
	require.NoError(t, err)

	stored, err := storage.New(base).Fetch(thursday)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Completed)
}

func TestLogCelebratesOnce(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()), withIntN(30))
	r, err := tr.Open(thursday)
	require.NoError(t, err)
	require.Equal(t, 100, r.Target)

	u, err := tr.Log(r, 90)
	require.NoError(t, err)
	assert.False(t, u.Celebrate)

	u, err = tr.Log(r, 10)
	require.NoError(t, err)
	assert.True(t, u.Celebrate)
	assert.True(t, u.Record.Celebrated)

	u, err = tr.Log(r, 10)
	require.NoError(t, err)
	assert.False(t, u.Celebrate)

	// Dropping below and climbing back does not fire again.
	_, err = tr.Log(r, -50)
	require.NoError(t, err)
	u, err = tr.Log(r, 50)
	require.NoError(t, err)
	assert.False(t, u.Celebrate)
}

func TestLogRestDay(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()))
	r, err := tr.Open(sunday)
	require.NoError(t, err)

	u, err := tr.Log(r, 10)
	assert.ErrorIs(t, err, tracker.ErrRestDay)
	assert.Equal(t, 0, u.Record.Completed)
	assert.False(t, u.Celebrate)
}

func TestStatus(t *testing.T) {
	tr := newTracker(t, storage.New(t.TempDir()))
	r := model.DailyRecord{Target: 100, Completed: 60}

	st, err := tr.Status(r, time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 50, st.Expected)
	assert.True(t, st.OnTrack)
	assert.Equal(t, 1.0, st.Fraction)
	assert.Equal(t, "10 ahead", st.Message)
	assert.Equal(t, model.BadgeHalf, st.Badge)
}

func TestMonth(t *testing.T) {
	base := t.TempDir()
	tr := newTracker(t, storage.New(base))
	for _, d := range []time.Time{thursday, thursday.AddDate(0, 0, -3), thursday.AddDate(0, 0, -14)} {
		_, err := tr.Open(d)
		require.NoError(t, err)
	}

	records, err := tr.Month(thursday)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-10-01", records[0].Key())
	assert.Equal(t, "2026-10-15", records[2].Key())

	_, err = tr.Month(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, tracker.ErrFutureMonth)
}

func TestMonthLoadFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	tr := newTracker(t, store)

	store.EXPECT().LoadMonth(gomock.Any()).Return(nil, errors.New("boom"))

	records, err := tr.Month(thursday)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLogRejectsEndedDay(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)
	tr := newTracker(t, storage.New(base), withIntN(30), withClock(&now))

	r, err := tr.Open(now)
	require.NoError(t, err)
	_, err = tr.Log(r, 10)
	require.NoError(t, err)
	assert.True(t, tr.IsCurrent(*r))

	now = now.Add(2 * time.Minute)
	assert.False(t, tr.IsCurrent(*r))

	u, err := tr.Log(r, 10)
	assert.ErrorIs(t, err, tracker.ErrPastDay)
	assert.Equal(t, 10, u.Record.Completed)
	assert.Equal(t, 10, r.Completed, "yesterday's record must stay unchanged")

	today, err := tr.Today()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", today.Key())
	_, err = tr.Log(today, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, today.Completed)
}
