// Package beverage binds a recipe to the three physical preparation steps.
package beverage

import (
	"github.com/agbru/coffeemachine/internal/logging"
	"github.com/agbru/coffeemachine/internal/recipe"
)

// Steps is the leaf-operation capability a Beverage drives. Implementations
// are side-effecting and must not fail.
type Steps interface {
	BoilWater(volume recipe.Quantity)
	Brew(amount recipe.Quantity)
	PourIntoCup()
}

// NoOpSteps performs nothing. It is the default Steps.
type NoOpSteps struct{}

func (NoOpSteps) BoilWater(recipe.Quantity) {}
func (NoOpSteps) Brew(recipe.Quantity)      {}
func (NoOpSteps) PourIntoCup()              {}

// LoggingSteps emits one debug entry per step.
type LoggingSteps struct {
	Logger logging.Logger
}

// NewLoggingSteps returns Steps that log through logger.
func NewLoggingSteps(logger logging.Logger) LoggingSteps {
	return LoggingSteps{Logger: logger}
}

func (s LoggingSteps) BoilWater(volume recipe.Quantity) {
	s.Logger.Debug("boiling water", logging.Int("water_ml", int(volume)))
}

func (s LoggingSteps) Brew(amount recipe.Quantity) {
	s.Logger.Debug("brewing", logging.Int("powder_g", int(amount)))
}

func (s LoggingSteps) PourIntoCup() {
	s.Logger.Debug("pouring into cup")
}

// Beverage is the preparation behavior bound to one Recipe.
type Beverage struct {
	name   string
	recipe recipe.Recipe
	steps  Steps
}

// Option configures a Beverage.
type Option func(*Beverage)

// WithSteps replaces the default no-op steps. A nil value is ignored.
func WithSteps(steps Steps) Option {
	return func(b *Beverage) {
		if steps != nil {
			b.steps = steps
		}
	}
}

// New creates a Beverage owning a copy of r.
func New(name string, r recipe.Recipe, opts ...Option) *Beverage {
	b := &Beverage{name: name, recipe: r, steps: NoOpSteps{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the beverage kind, e.g. "coffee".
func (b *Beverage) Name() string { return b.name }

// Recipe returns the recipe the beverage was built from.
func (b *Beverage) Recipe() recipe.Recipe { return b.recipe }

// Prepare boils the recipe's water volume, brews its solid amount and pours
// the result, in that order. Each quantity function is invoked exactly once.
func (b *Beverage) Prepare() {
	b.steps.BoilWater(b.recipe.WaterVolume())
	b.steps.Brew(b.recipe.SolidAmount())
	b.steps.PourIntoCup()
}
