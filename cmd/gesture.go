package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/gesture"
)

var gestureCmd = &cobra.Command{
	Use:       "gesture <tap|two-finger-tap>",
	Short:     "Log push-ups with a gesture shortcut (tap +10, two-finger-tap -10)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(gesture.Tap), string(gesture.TwoFingerTap)},
	RunE:      runGesture,
}

func runGesture(cmd *cobra.Command, args []string) error {
	kind, err := gesture.ParseKind(args[0])
	if err != nil {
		return err
	}
	return logDelta(gesture.Delta(kind))
}
