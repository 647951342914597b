package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/exercise-for-good/internal/gesture"
	"github.com/Tiliavir/exercise-for-good/internal/model"
	"github.com/Tiliavir/exercise-for-good/internal/session"
	"github.com/Tiliavir/exercise-for-good/internal/tracker"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Log push-ups interactively from gesture events on stdin",
	Long: `Reads one event per line until EOF or "quit":

  tap               +10
  two-finger-tap    -10
  rotate <radians>  angle of the finger around the centre; turning
                    clockwise adds, counter-clockwise removes
  end               lift the finger, ending the rotation`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	tr := newTracker()
	r := openToday(tr)
	if r.IsRestDay {
		fmt.Println("Today is a rest day – nothing to log.")
		return nil
	}

	resetAfter, err := cfg.ResetAfter()
	if err != nil {
		return err
	}

	err = runSessionLoop(os.Stdin, os.Stdout, tr, r, resetAfter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return nil
}

// sessionEvent is one parsed input line.
type sessionEvent struct {
	kind  string // "gesture", "rotate", "end", "quit"
	tap   gesture.Kind
	angle float64
}

func parseSessionLine(line string) (sessionEvent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return sessionEvent{}, errors.New("empty line")
	}
	switch fields[0] {
	case "end":
		return sessionEvent{kind: "end"}, nil
	case "quit", "exit":
		return sessionEvent{kind: "quit"}, nil
	case "rotate":
		if len(fields) != 2 {
			return sessionEvent{}, errors.New("usage: rotate <radians>")
		}
		a, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return sessionEvent{}, fmt.Errorf("invalid angle %q", fields[1])
		}
		return sessionEvent{kind: "rotate", angle: a}, nil
	}
	k, err := gesture.ParseKind(fields[0])
	if err != nil {
		return sessionEvent{}, err
	}
	return sessionEvent{kind: "gesture", tap: k}, nil
}

// runSessionLoop applies gesture events from in to r, switching to the new
// day's record once the day rolls over. Feedback, including the burst total
// kept by the session accumulator, is written to out.
func runSessionLoop(in io.Reader, out io.Writer, tr *tracker.Tracker, r *model.DailyRecord, resetAfter time.Duration) error {
	var mu sync.Mutex
	printf := func(format string, a ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, a...)
	}

	acc := session.NewAccumulator(resetAfter, func(total int) {
		printf("burst done: %+d\n", total)
	})
	defer acc.Stop()

	var rot gesture.Rotation
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ev, err := parseSessionLine(line)
		if err != nil {
			printf("? %v\n", err)
			continue
		}

		var delta int
		switch ev.kind {
		case "quit":
			return nil
		case "end":
			rot.End()
			continue
		case "rotate":
			d, ok := rot.Step(ev.angle)
			if !ok {
				continue
			}
			delta = d
		case "gesture":
			delta = gesture.Delta(ev.tap)
		}

		if !tr.IsCurrent(*r) {
			next, err := tr.Today()
			if err != nil {
				return err
			}
			r = next
			acc.Stop()
			printf("new day: %s, target %d\n", r.Key(), r.Target)
		}

		u, err := tr.Log(r, delta)
		if errors.Is(err, tracker.ErrRestDay) {
			printf("rest day – nothing logged\n")
			continue
		}
		if err != nil {
			return err
		}
		burst := acc.Add(delta)
		printf("%+d  total %d/%d  burst %+d\n", delta, u.Record.Completed, u.Record.Target, burst)
		if u.Celebrate {
			mu.Lock()
			printCelebration(out, u.Record)
			mu.Unlock()
		}
	}
	return scanner.Err()
}
