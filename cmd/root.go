package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/config"
	"github.com/Tiliavir/exercise-for-good/internal/logging"
	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/storage"
	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "efg",
	Short: "Exercise For Good – a daily push-up counter",
	Long: `efg assigns a random push-up target every day, paces it over the
active hours and awards badges at 25, 50, 75 and 100 percent.
All data is stored as human-readable JSON files in ~/.efg/.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var cfg config.Config

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(gestureCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(monthCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Log.File,
		LogToStderr:   cfg.Log.ToStderr,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	return nil
}

// newTracker opens the data directory and builds a tracker from the config.
// Storage problems exit with status 2.
func newTracker() *tracker.Tracker {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts, err := cfg.TrackerOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tr, err := tracker.New(storage.New(base), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return tr
}

// openToday returns today's record, exiting with status 2 if it cannot be
// persisted.
func openToday(tr *tracker.Tracker) *model.DailyRecord {
	r, err := tr.Today()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}
