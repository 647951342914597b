package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's target, progress and pacing",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	tr := newTracker()
	r := openToday(tr)
	return showDay(tr, tracker.Update{Record: *r})
}

// showDay prints the day view for u and, if the update completed the day,
// the celebration.
func showDay(tr *tracker.Tracker, u tracker.Update) error {
	st, err := tr.Status(u.Record, time.Now())
	if err != nil {
		return err
	}
	printDay(os.Stdout, st)
	if u.Celebrate {
		fmt.Println()
		printCelebration(os.Stdout, u.Record)
	}
	return nil
}
