package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/timecalc"
	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

// printDay renders the day view: ring, badges and pacing.
func printDay(w io.Writer, st tracker.Status) {
	r := st.Record
	fmt.Fprintf(w, "Day %d\n", r.Date.Day())
	if r.IsRestDay {
		fmt.Fprintln(w, "  Rest Day")
		return
	}

	fmt.Fprintf(w, "  %d complete  Target: %d  (%s)\n", r.Completed, r.Target, percent(r.Completed, r.Target))
	fmt.Fprintf(w, "  Badges: %s\n", badgeRow(st.Badge))

	onTrack := "behind"
	if st.OnTrack {
		onTrack = "on track"
	}
	fmt.Fprintf(w, "  Pacing: %s, %s (expected %d)\n", onTrack, st.Message, st.Expected)
}

// badgeRow shows every earnable tier, bracketing the earned ones.
func badgeRow(tier model.BadgeTier) string {
	parts := make([]string, 0, len(model.EarnableBadges))
	for _, level := range model.EarnableBadges {
		if tier.Earned(level) {
			parts = append(parts, "["+level.String()+"]")
		} else {
			parts = append(parts, " "+level.String()+" ")
		}
	}
	return strings.Join(parts, " ")
}

// percent formats completed/target, showing over-completion as e.g.
// "140% (+40%)".
func percent(completed, target int) string {
	p := 0
	if target > 0 {
		p = completed * 100 / target
	}
	if p > 100 {
		return fmt.Sprintf("%d%% (+%d%%)", p, p-100)
	}
	return fmt.Sprintf("%d%%", p)
}

func printCelebration(w io.Writer, r model.DailyRecord) {
	fmt.Fprintf(w, "*** Daily target of %d reached! ***\n", r.Target)
}

// printMonth lists a month's records, one line per stored day.
func printMonth(w io.Writer, month time.Time, records []model.DailyRecord) {
	fmt.Fprintln(w, timecalc.MonthLabel(month))
	if len(records) == 0 {
		fmt.Fprintln(w, "No days recorded.")
		return
	}
	for _, r := range records {
		day := r.Date.Format("Mon 02")
		if r.IsRestDay {
			fmt.Fprintf(w, "%s  Rest Day\n", day)
			continue
		}
		badge := r.Badge().String()
		if badge != "" {
			badge = "  badge " + badge
		}
		fmt.Fprintf(w, "%s  %4d / %-4d %s%s\n", day, r.Completed, r.Target, percent(r.Completed, r.Target), badge)
	}
}
