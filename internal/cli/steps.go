package cli

import (
	"fmt"
	"io"

	"github.com/agbru/coffeemachine/internal/beverage"
	"github.com/agbru/coffeemachine/internal/recipe"
	"github.com/agbru/coffeemachine/internal/ui"
)

// ConsoleSteps narrates each brewing step on out. It backs the --verbose
// console mode.
type ConsoleSteps struct {
	out io.Writer
}

var _ beverage.Steps = ConsoleSteps{}

// NewConsoleSteps returns ConsoleSteps writing to out.
func NewConsoleSteps(out io.Writer) ConsoleSteps {
	return ConsoleSteps{out: out}
}

func (s ConsoleSteps) BoilWater(volume recipe.Quantity) {
	fmt.Fprintf(s.out, "  %sboiling %dml water%s\n", ui.ColorGrey(), volume, ui.ColorReset())
}

func (s ConsoleSteps) Brew(amount recipe.Quantity) {
	fmt.Fprintf(s.out, "  %sbrewing %dg%s\n", ui.ColorGrey(), amount, ui.ColorReset())
}

func (s ConsoleSteps) PourIntoCup() {
	fmt.Fprintf(s.out, "  %spouring into cup%s\n", ui.ColorGrey(), ui.ColorReset())
}
