package beverage

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/agbru/coffeemachine/internal/logging"
	"github.com/agbru/coffeemachine/internal/recipe"
	"github.com/rs/zerolog"
)

type recordingSteps struct {
	calls []string
}

func (r *recordingSteps) BoilWater(v recipe.Quantity) { r.calls = append(r.calls, fmt.Sprintf("boil %d", v)) }
func (r *recordingSteps) Brew(a recipe.Quantity)      { r.calls = append(r.calls, fmt.Sprintf("brew %d", a)) }
func (r *recordingSteps) PourIntoCup()                { r.calls = append(r.calls, "pour") }

func TestPrepareOrder(t *testing.T) {
	t.Parallel()
	steps := &recordingSteps{}
	New("coffee", recipe.Coffee, WithSteps(steps)).Prepare()

	want := []string{"boil 150", "brew 100", "pour"}
	if !reflect.DeepEqual(steps.calls, want) {
		t.Errorf("steps = %v, want %v", steps.calls, want)
	}
}

func TestPrepareCallsEachQuantityOnce(t *testing.T) {
	t.Parallel()
	var water, solid int
	r := recipe.Recipe{
		WaterVolume: func() recipe.Quantity { water++; return 10 },
		SolidAmount: func() recipe.Quantity { solid++; return 5 },
	}
	b := New("counted", r)

	b.Prepare()
	b.Prepare()

	if water != 2 || solid != 2 {
		t.Errorf("quantity calls = (%d, %d), want (2, 2)", water, solid)
	}
}

func TestBeveragesDoNotInterfere(t *testing.T) {
	t.Parallel()
	coffeeSteps, teaSteps := &recordingSteps{}, &recordingSteps{}
	coffee := New("coffee", recipe.Coffee, WithSteps(coffeeSteps))
	tea := New("tea", recipe.Tea, WithSteps(teaSteps))

	coffee.Prepare()
	tea.Prepare()
	coffee.Prepare()

	wantCoffee := []string{"boil 150", "brew 100", "pour", "boil 150", "brew 100", "pour"}
	wantTea := []string{"boil 200", "brew 150", "pour"}
	if !reflect.DeepEqual(coffeeSteps.calls, wantCoffee) {
		t.Errorf("coffee steps = %v, want %v", coffeeSteps.calls, wantCoffee)
	}
	if !reflect.DeepEqual(teaSteps.calls, wantTea) {
		t.Errorf("tea steps = %v, want %v", teaSteps.calls, wantTea)
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	b := New("tea", recipe.Tea, WithSteps(nil))
	if b.Name() != "tea" {
		t.Errorf("Name() = %q, want tea", b.Name())
	}
	if _, ok := b.steps.(NoOpSteps); !ok {
		t.Errorf("nil WithSteps should keep NoOpSteps, got %T", b.steps)
	}
	if got := b.Recipe().WaterVolume(); got != 200 {
		t.Errorf("Recipe().WaterVolume() = %d, want 200", got)
	}
	b.Prepare()
}

func TestLoggingSteps(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	New("coffee", recipe.Coffee, WithSteps(NewLoggingSteps(logger))).Prepare()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d: %q", len(lines), buf.String())
	}
	for i, want := range []string{`"water_ml":150`, `"powder_g":100`, "pouring into cup"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}
