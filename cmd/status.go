package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a one-line pacing verdict",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	tr := newTracker()
	r := openToday(tr)
	if r.IsRestDay {
		fmt.Println("rest day")
		return nil
	}

	st, err := tr.Status(*r, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("%d/%d %s\n", r.Completed, r.Target, st.Message)
	return nil
}
