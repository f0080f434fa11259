// Package recipe describes how much water and how much solid (powder or
// leaves) a beverage kind needs.
package recipe

import (
	apperrors "github.com/agbru/coffeemachine/internal/errors"
)

// Quantity is a water volume in millilitres or a solid amount in grams.
type Quantity int

// Recipe is a pair of quantity-producing functions. Both functions must be
// deterministic and free of side effects; a Recipe is copied by value and
// never mutated after construction.
type Recipe struct {
	WaterVolume func() Quantity
	SolidAmount func() Quantity
}

// Fixed returns a Recipe whose functions always produce water and solid.
func Fixed(water, solid Quantity) Recipe {
	return Recipe{
		WaterVolume: func() Quantity { return water },
		SolidAmount: func() Quantity { return solid },
	}
}

// Seed recipes served by the default menu.
var (
	Coffee = Fixed(150, 100)
	Tea    = Fixed(200, 150)
)

// Validate reports whether both quantity functions are set.
func (r Recipe) Validate() error {
	if r.WaterVolume == nil {
		return apperrors.ValidationError{Field: "water_volume", Message: "function is nil"}
	}
	if r.SolidAmount == nil {
		return apperrors.ValidationError{Field: "solid_amount", Message: "function is nil"}
	}
	return nil
}
