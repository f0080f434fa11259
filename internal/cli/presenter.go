package cli

import (
	"fmt"
	"io"

	"github.com/agbru/coffeemachine/internal/format"
	"github.com/agbru/coffeemachine/internal/menu"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/ui"
)

// CLISummaryPresenter prints the outcome of a drain cycle.
type CLISummaryPresenter struct{}

var _ orchestration.SummaryPresenter = CLISummaryPresenter{}

// PresentSummary prints "Served N orders in D" for a completed cycle, or
// the number of orders that were queued when the cycle aborted.
func (CLISummaryPresenter) PresentSummary(summary orchestration.CycleSummary, out io.Writer) {
	duration := format.FormatExecutionDuration(summary.Duration)
	if summary.Err != nil {
		fmt.Fprintf(out, "%sAborted after %s (%d orders queued)%s\n",
			ui.ColorRed(), duration, summary.Orders, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%sServed %d orders%s in %s%s%s\n",
		ui.ColorGreen(), summary.Orders, ui.ColorReset(),
		ui.ColorYellow(), duration, ui.ColorReset())
}

// CLIColorProvider feeds the current theme to apperrors.HandleRunError.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMenu prints the beverages of m as an aligned table.
func DisplayMenu(m menu.Menu, out io.Writer) {
	nameWidth := len("Beverage")
	for _, item := range m.Beverages {
		nameWidth = max(nameWidth, len(item.Name))
	}

	fmt.Fprintf(out, "%s%-*s%s   %sWater%s   %sPowder%s\n",
		ui.ColorUnderline(), nameWidth, "Beverage", ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())
	for _, item := range m.Beverages {
		fmt.Fprintf(out, "%s%-*s%s   %5s   %6s\n",
			ui.ColorBlue(), nameWidth, item.Name, ui.ColorReset(),
			fmt.Sprintf("%dml", item.WaterML), fmt.Sprintf("%dg", item.PowderG))
	}
}
