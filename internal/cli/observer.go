package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/coffeemachine/internal/format"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/ui"
)

// ConsoleObserver prints one plain line per machine event:
//
//	started preparing 2 orders
//	running 50 %
//	running 100 %
//	finished
type ConsoleObserver struct {
	out io.Writer
}

// NewConsoleObserver returns a ConsoleObserver writing to out.
func NewConsoleObserver(out io.Writer) *ConsoleObserver {
	return &ConsoleObserver{out: out}
}

// Started prints the number of orders about to be prepared.
func (c *ConsoleObserver) Started(numOrders int) error {
	_, err := fmt.Fprintf(c.out, "started preparing %d orders\n", numOrders)
	return err
}

// Progress prints the completion percentage.
func (c *ConsoleObserver) Progress(percent int) error {
	_, err := fmt.Fprintf(c.out, "running %d %%\n", percent)
	return err
}

// Finished prints the end-of-cycle line.
func (c *ConsoleObserver) Finished() error {
	_, err := fmt.Fprintln(c.out, "finished")
	return err
}

// SpinnerObserver animates a spinner with a progress bar and an ETA while
// the machine drains its queue. It is meant for interactive terminals.
type SpinnerObserver struct {
	out     io.Writer
	spinner Spinner
	eta     *format.ETATracker
	orders  int
}

// NewSpinnerObserver returns a SpinnerObserver writing to out.
func NewSpinnerObserver(out io.Writer) *SpinnerObserver {
	return &SpinnerObserver{out: out}
}

// Started starts the spinner.
func (s *SpinnerObserver) Started(numOrders int) error {
	s.orders = numOrders
	s.eta = format.NewETATracker()
	s.spinner = newSpinner(spinner.WithWriter(s.out))
	s.spinner.UpdateSuffix(suffix(0, 0))
	s.spinner.Start()
	return nil
}

// Progress refreshes the bar.
func (s *SpinnerObserver) Progress(percent int) error {
	if s.spinner == nil {
		return nil
	}
	eta := s.eta.Update(percent)
	s.spinner.UpdateSuffix(suffix(percent, eta))
	return nil
}

// Finished stops the spinner and prints the completed bar.
func (s *SpinnerObserver) Finished() error {
	if s.spinner == nil {
		return nil
	}
	s.spinner.Stop()
	s.spinner = nil
	_, err := fmt.Fprintf(s.out, "%s%s%s %d orders\n",
		ui.ColorGreen(), format.ProgressBar(1, ProgressBarWidth), ui.ColorReset(), s.orders)
	return err
}

// Aborted stops the spinner so the diagnostic is not overdrawn.
func (s *SpinnerObserver) Aborted(error) {
	if s.spinner == nil {
		return
	}
	s.spinner.Stop()
	s.spinner = nil
	fmt.Fprintln(s.out)
}

func suffix(percent int, eta time.Duration) string {
	return " " + format.FormatProgressBarWithETA(float64(percent)/100, eta, ProgressBarWidth)
}

var (
	_ orchestration.OrderStateObserver = (*ConsoleObserver)(nil)
	_ orchestration.OrderStateObserver = (*SpinnerObserver)(nil)
	_ orchestration.AbortObserver      = (*SpinnerObserver)(nil)
)
