package pizza

import (
	"strings"

	"github.com/jdziat/buildkit"
)

// Defaults rendered for unconfigured parts of an order.
const (
	DefaultLabel = "Pizza"
	NoSauce      = "no sauce"
)

// Pizza is an order under construction.
type Pizza struct {
	size        string
	crust       string
	label       buildkit.Optional[string]
	ingredients []string
	sauce       buildkit.Optional[string]
	extras      []string
}

// Size returns the pizza size.
func (p Pizza) Size() string { return p.size }

// Crust returns the crust type.
func (p Pizza) Crust() string { return p.crust }

// Label returns the header label, DefaultLabel when unset.
func (p Pizza) Label() string { return p.label.OrElse(DefaultLabel) }

// Ingredients returns a copy of the ingredients in the order they were added.
func (p Pizza) Ingredients() []string { return buildkit.CloneStrings(p.ingredients) }

// Sauce returns the sauce and whether one was chosen.
func (p Pizza) Sauce() (string, bool) { return p.sauce.Get() }

// Extras returns a copy of the extras in the order they were added.
func (p Pizza) Extras() []string { return buildkit.CloneStrings(p.extras) }

// Render returns the order ticket:
//
//	=== Pizza ===
//	Size: Medium
//	Crust: Whole wheat
//	Ingredients: pepperoni, garlic
//	Sauce: tomato
//	Extras: none
func (p Pizza) Render() string {
	lines := []string{
		"=== " + p.Label() + " ===",
		"Size: " + p.size,
		"Crust: " + p.crust,
		"Ingredients: " + buildkit.JoinOrNone(p.ingredients, ", "),
		"Sauce: " + buildkit.ValueOr(p.sauce, NoSauce),
		"Extras: " + buildkit.JoinOrNone(p.extras, ", "),
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (p Pizza) String() string {
	return p.Render()
}

func (p *Pizza) snapshot() Pizza {
	return Pizza{
		size:        p.size,
		crust:       p.crust,
		label:       p.label,
		ingredients: buildkit.CloneStrings(p.ingredients),
		sauce:       p.sauce,
		extras:      buildkit.CloneStrings(p.extras),
	}
}
