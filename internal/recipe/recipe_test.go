package recipe

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
)

func TestSeedRecipes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		recipe       Recipe
		water, solid Quantity
	}{
		{"coffee", Coffee, 150, 100},
		{"tea", Tea, 200, 150},
		{"fixed", Fixed(1, 2), 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Repeated calls must keep producing the same quantities.
			for range 3 {
				if got := tt.recipe.WaterVolume(); got != tt.water {
					t.Errorf("WaterVolume() = %d, want %d", got, tt.water)
				}
				if got := tt.recipe.SolidAmount(); got != tt.solid {
					t.Errorf("SolidAmount() = %d, want %d", got, tt.solid)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		recipe  Recipe
		field   string
		wantErr bool
	}{
		{"valid", Coffee, "", false},
		{"zero value", Recipe{}, "water_volume", true},
		{"missing solid", Recipe{WaterVolume: func() Quantity { return 1 }}, "solid_amount", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}
