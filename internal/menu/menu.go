// Package menu loads the beverage kinds the machine can serve from a YAML
// document and registers them as order constructors.
package menu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agbru/coffeemachine/internal/beverage"
	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/order"
	"github.com/agbru/coffeemachine/internal/recipe"
)

// Item is one beverage kind.
type Item struct {
	Name    string `yaml:"name"`
	WaterML int    `yaml:"water_ml"`
	PowderG int    `yaml:"powder_g"`
}

// Recipe returns the fixed recipe described by the item.
func (i Item) Recipe() recipe.Recipe {
	return recipe.Fixed(recipe.Quantity(i.WaterML), recipe.Quantity(i.PowderG))
}

// Menu is an ordered list of beverage kinds.
type Menu struct {
	Beverages []Item `yaml:"beverages"`
}

// Default returns the built-in menu: coffee and tea.
func Default() Menu {
	return Menu{Beverages: []Item{
		{Name: "coffee", WaterML: 150, PowderG: 100},
		{Name: "tea", WaterML: 200, PowderG: 150},
	}}
}

// Parse decodes and validates a YAML menu. Unknown keys are rejected.
func Parse(data []byte) (Menu, error) {
	return decode(bytes.NewReader(data))
}

// Load reads and validates the YAML menu at path.
func Load(path string) (Menu, error) {
	file, err := os.Open(path)
	if err != nil {
		return Menu{}, apperrors.NewConfigError("failed to open menu file: %v", err)
	}
	defer file.Close()

	m, err := decode(file)
	if err != nil {
		return Menu{}, apperrors.WrapError(err, "menu %s", path)
	}
	return m, nil
}

func decode(r io.Reader) (Menu, error) {
	var m Menu
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Menu{}, apperrors.NewConfigError("failed to decode menu: %v", err)
	}
	if err := m.Validate(); err != nil {
		return Menu{}, err
	}
	return m, nil
}

// Validate checks that the menu is non-empty, that names are non-empty and
// unique, and that every quantity is positive.
func (m Menu) Validate() error {
	if len(m.Beverages) == 0 {
		return apperrors.ValidationError{Field: "beverages", Message: "menu is empty"}
	}
	seen := make(map[string]bool, len(m.Beverages))
	for i, item := range m.Beverages {
		field := fmt.Sprintf("beverages[%d]", i)
		switch {
		case item.Name == "":
			return apperrors.ValidationError{Field: field + ".name", Message: "must not be empty"}
		case seen[item.Name]:
			return apperrors.ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate beverage %q", item.Name)}
		case item.WaterML <= 0:
			return apperrors.ValidationError{Field: field + ".water_ml", Message: "must be positive"}
		case item.PowderG <= 0:
			return apperrors.ValidationError{Field: field + ".powder_g", Message: "must be positive"}
		}
		seen[item.Name] = true
	}
	return nil
}

// Names returns the beverage names in menu order.
func (m Menu) Names() []string {
	names := make([]string, len(m.Beverages))
	for i, item := range m.Beverages {
		names[i] = item.Name
	}
	return names
}

// Lookup returns the item registered under name.
func (m Menu) Lookup(name string) (Item, bool) {
	for _, item := range m.Beverages {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// Register adds every item to r in menu order, replacing existing entries
// with the same name. Beverages built from the registry run on steps.
func (m Menu) Register(r *order.Registry, steps beverage.Steps) {
	for _, item := range m.Beverages {
		r.Register(item.Name, order.BeverageConstructor(item.Name, item.Recipe(), steps))
	}
}

// Merge returns base followed by the items of overlay; an overlay item whose
// name is already in base replaces it in place.
func Merge(base, overlay Menu) Menu {
	out := Menu{Beverages: append([]Item(nil), base.Beverages...)}
	for _, item := range overlay.Beverages {
		replaced := false
		for i := range out.Beverages {
			if out.Beverages[i].Name == item.Name {
				out.Beverages[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			out.Beverages = append(out.Beverages, item)
		}
	}
	return out
}
