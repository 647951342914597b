package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/timecalc"
)

var monthFlag string

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "List the recorded days of a month",
	Args:  cobra.NoArgs,
	RunE:  runMonth,
}

func init() {
	monthCmd.Flags().StringVar(&monthFlag, "month", "", "Month to list (YYYY-MM); defaults to the current month")
}

func runMonth(cmd *cobra.Command, args []string) error {
	month := time.Now()
	if monthFlag != "" {
		var err error
		month, err = timecalc.ParseMonth(monthFlag, time.Local)
		if err != nil {
			return err
		}
	}

	records, err := newTracker().Month(month)
	if err != nil {
		return err
	}
	printMonth(os.Stdout, month, records)
	return nil
}
