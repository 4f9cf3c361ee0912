package pizza

import (
	"errors"

	"github.com/jdziat/buildkit"
)

// Builder assembles a Pizza order.
type Builder struct {
	core buildkit.Builder[Pizza]
}

// New creates a Builder for a pizza of the given size and crust. Both are
// required; a blank value is rejected and no Builder is returned.
func New(size, crust string, opts ...buildkit.Option) (*Builder, error) {
	if err := errors.Join(
		buildkit.ValidateNotBlank("size", size),
		buildkit.ValidateNotBlank("crust", crust),
	); err != nil {
		return nil, err
	}
	opts = append([]buildkit.Option{buildkit.WithName("pizza")}, opts...)
	return &Builder{
		core: buildkit.NewBuilder(&Pizza{size: size, crust: crust}, opts...),
	}, nil
}

// Ingredient adds an ingredient. Repeats are kept.
func (b *Builder) Ingredient(ingredient string) *Builder {
	b.core.Step("ingredient", buildkit.ValidateNotBlank("ingredient", ingredient), func(p *Pizza) {
		p.ingredients = append(p.ingredients, ingredient)
	})
	return b
}

// Ingredients adds several ingredients in order. If any is blank, none is
// added.
func (b *Builder) Ingredients(ingredients ...string) *Builder {
	added := buildkit.CloneStrings(ingredients)
	b.core.Step("ingredients", buildkit.ValidateEach("ingredients", added), func(p *Pizza) {
		p.ingredients = append(p.ingredients, added...)
	})
	return b
}

// Sauce sets the sauce; the last call wins.
func (b *Builder) Sauce(sauce string) *Builder {
	b.core.Step("sauce", buildkit.ValidateNotBlank("sauce", sauce), func(p *Pizza) {
		p.sauce = buildkit.Some(sauce)
	})
	return b
}

// Extra adds an extra topping. Repeats are kept.
func (b *Builder) Extra(extra string) *Builder {
	b.core.Step("extra", buildkit.ValidateNotBlank("extra", extra), func(p *Pizza) {
		p.extras = append(p.extras, extra)
	})
	return b
}

// Label sets the ticket header; the last call wins.
func (b *Builder) Label(label string) *Builder {
	b.core.Step("label", buildkit.ValidateNotBlank("label", label), func(p *Pizza) {
		p.label = buildkit.Some(label)
	})
	return b
}

// Err returns the first rejected step, or nil.
func (b *Builder) Err() error {
	return b.core.Err()
}

// State returns the builder's lifecycle state.
func (b *Builder) State() buildkit.State {
	return b.core.State()
}

// Execute renders the order ticket.
func (b *Builder) Execute() (string, error) {
	return buildkit.Finalize(&b.core, func(p *Pizza) string {
		return p.Render()
	}).Unwrap()
}

// Order returns a snapshot of the assembled order.
func (b *Builder) Order() (Pizza, error) {
	return buildkit.Finalize(&b.core, (*Pizza).snapshot).Unwrap()
}
