package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/menu"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/order"
	"github.com/agbru/coffeemachine/internal/ui"
)

// maxBatch caps the count accepted by a single "order" command.
const maxBatch = 100

// REPL is an interactive session where orders are queued one command at a
// time and brewed on demand.
type REPL struct {
	registry *order.Registry
	machine  *orchestration.Machine
	menu     menu.Menu
	queued   []string
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a session over registry. Orders are brewed by machine,
// whose observers report progress; m is shown by the "menu" command.
func NewREPL(registry *order.Registry, machine *orchestration.Machine, m menu.Menu) *REPL {
	return &REPL{
		registry: registry,
		machine:  machine,
		menu:     m,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads commands until "exit" or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"coffee> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		eof := err != nil

		if line := strings.TrimSpace(input); line != "" && !r.processCommand(line) {
			return
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s=== Coffee Machine - Interactive Mode ===%s\n\n", ui.ColorCyan()+ui.ColorBold(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sorder <name> [n]%s - Queue n beverages (default 1)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %squeue%s            - Show queued orders\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstart%s            - Brew every queued order\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sclear%s            - Drop queued orders\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smenu%s             - List beverages (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.registry.List(), ", "))
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand runs one command and reports whether the session goes on.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "order", "o":
		r.cmdOrder(args)
	case "queue", "ls":
		r.cmdQueue()
	case "start", "s":
		r.cmdStart()
	case "clear":
		r.queued = nil
		fmt.Fprintln(r.out, "Queue cleared.")
	case "menu", "m":
		DisplayMenu(r.menu, r.out)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if r.registry.Has(parts[0]) {
			r.cmdOrder(parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) cmdOrder(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: order <name> [n]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	name := args[0]
	if !r.registry.Has(name) {
		apperrors.HandleRunError(apperrors.NotFoundError{Name: name}, r.out, CLIColorProvider{})
		return
	}

	count := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > maxBatch {
			fmt.Fprintf(r.out, "%sInvalid count: %s (1-%d)%s\n", ui.ColorRed(), args[1], maxBatch, ui.ColorReset())
			return
		}
		count = n
	}

	for range count {
		r.queued = append(r.queued, name)
	}
	fmt.Fprintf(r.out, "Queued %s%d x %s%s (%d pending)\n", ui.ColorCyan(), count, name, ui.ColorReset(), len(r.queued))
}

func (r *REPL) cmdQueue() {
	if len(r.queued) == 0 {
		fmt.Fprintln(r.out, "Queue is empty.")
		return
	}
	for i, name := range r.queued {
		fmt.Fprintf(r.out, "  %2d. %s\n", i+1, name)
	}
}

// cmdStart hands the queued names to the machine and drains it. The local
// queue is consumed whatever the outcome, matching the machine's own queue.
func (r *REPL) cmdStart() {
	names := r.queued
	r.queued = nil

	if err := orchestration.RequestByName(r.machine, r.registry, names); err != nil {
		apperrors.HandleRunError(err, r.out, CLIColorProvider{})
		return
	}

	start := time.Now()
	err := r.machine.Start()
	CLISummaryPresenter{}.PresentSummary(orchestration.CycleSummary{
		Orders:   len(names),
		Duration: time.Since(start),
		Err:      err,
	}, r.out)
	if err != nil {
		apperrors.HandleRunError(err, r.out, CLIColorProvider{})
	}
}
