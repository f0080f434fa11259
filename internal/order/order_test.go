package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/agbru/coffeemachine/internal/beverage"
	"github.com/agbru/coffeemachine/internal/order/mocks"
	"github.com/agbru/coffeemachine/internal/recipe"
)

type countingSteps struct {
	boil, brew, pour int
}

func (c *countingSteps) BoilWater(recipe.Quantity) { c.boil++ }
func (c *countingSteps) Brew(recipe.Quantity)      { c.brew++ }
func (c *countingSteps) PourIntoCup()              { c.pour++ }

func TestFunc(t *testing.T) {
	t.Parallel()
	want := errors.New("milk curdled")
	if err := Func(func() error { return want }).Execute(); !errors.Is(err, want) {
		t.Errorf("Execute() = %v, want %v", err, want)
	}
}

func TestFromAction(t *testing.T) {
	t.Parallel()
	calls := 0
	o := FromAction(func() { calls++ })
	if err := o.Execute(); err != nil {
		t.Fatalf("Execute() returned %v", err)
	}
	if calls != 1 {
		t.Errorf("action called %d times, want 1", calls)
	}
}

func TestFromBeverage(t *testing.T) {
	t.Parallel()
	steps := &countingSteps{}
	o := FromBeverage(beverage.New("tea", recipe.Tea, beverage.WithSteps(steps)))

	if err := o.Execute(); err != nil {
		t.Fatalf("Execute() returned %v", err)
	}
	if *steps != (countingSteps{1, 1, 1}) {
		t.Errorf("steps = %+v, want one call each", *steps)
	}
}

func TestTicketDelegates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockOrder(ctrl)
	fault := errors.New("no cups left")
	inner.EXPECT().Execute().Return(fault).Times(1)

	tk := NewTicket("coffee", inner)

	if err := tk.Execute(); !errors.Is(err, fault) {
		t.Errorf("Execute() = %v, want %v", err, fault)
	}
	if tk.Name() != "coffee" {
		t.Errorf("Name() = %q, want coffee", tk.Name())
	}
	if tk.ID() == uuid.Nil {
		t.Error("ID() should not be the nil UUID")
	}
	if tk.Unwrap() != inner {
		t.Error("Unwrap() should return the decorated order")
	}
	if !strings.HasPrefix(tk.String(), "coffee#") || len(tk.String()) != len("coffee#")+8 {
		t.Errorf("String() = %q", tk.String())
	}
}

func TestTicketIDsAreUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[uuid.UUID]bool)
	for range 100 {
		id := NewTicket("tea", FromAction(func() {})).ID()
		if seen[id] {
			t.Fatalf("duplicate ticket ID %s", id)
		}
		seen[id] = true
	}
}
