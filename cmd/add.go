package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

var addCmd = &cobra.Command{
	Use:   "add <count>",
	Short: "Log push-ups for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelta(args[0], 1)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <count>",
	Short: "Remove wrongly logged push-ups (never below zero)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelta(args[0], -1)
	},
}

func runDelta(arg string, sign int) error {
	n, err := parseCount(arg)
	if err != nil {
		return err
	}
	return logDelta(sign * n)
}

// maxCount bounds a single add or sub.
const maxCount = 10000

// parseCount accepts a repetition count in [0, maxCount].
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxCount {
		return 0, fmt.Errorf("invalid count %q: want an integer between 0 and %d", s, maxCount)
	}
	return n, nil
}

// logDelta applies delta to today's record and prints the result.
func logDelta(delta int) error {
	tr := newTracker()
	r := openToday(tr)

	u, err := tr.Log(r, delta)
	if errors.Is(err, tracker.ErrRestDay) {
		fmt.Println("Today is a rest day – nothing to log.")
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return showDay(tr, u)
}
