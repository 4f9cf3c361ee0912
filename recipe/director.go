package recipe

import (
	"fmt"

	"github.com/jdziat/buildkit"
	"github.com/jdziat/buildkit/computer"
	"github.com/jdziat/buildkit/pizza"
	"github.com/jdziat/buildkit/query"
)

// Rendered is the output of one recipe.
type Rendered struct {
	Name   string
	Kind   Kind
	Output string
}

// Director drives the domain builders from recipes. The options are passed
// to every builder it creates.
type Director struct {
	opts   []buildkit.Option
	logger buildkit.StructuredLogger
}

// NewDirector creates a Director. logger may be nil.
func NewDirector(logger buildkit.StructuredLogger, opts ...buildkit.Option) *Director {
	if logger == nil {
		logger = buildkit.NopLogger{}
	}
	return &Director{
		opts:   append([]buildkit.Option{buildkit.WithLogger(logger)}, opts...),
		logger: logger,
	}
}

// Render builds the product described by r and returns its text.
func (d *Director) Render(r Recipe) (string, error) {
	if err := r.Validate(); err != nil {
		return "", fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	var (
		out string
		err error
	)
	switch r.Kind {
	case KindComputer:
		out, err = d.computer(r.Computer)
	case KindQuery:
		out, err = d.query(r.Query)
	case KindPizza:
		out, err = d.pizza(r.Pizza)
	}
	if err != nil {
		d.logger.Warn("recipe rejected", "recipe", r.Name, "kind", r.Kind, "error", err)
		return "", fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	d.logger.Debug("recipe rendered", "recipe", r.Name, "kind", r.Kind)
	return out, nil
}

// RenderAll renders every recipe in book order, stopping at the first
// failure. A nil book renders nothing.
func (d *Director) RenderAll(book *Book) ([]Rendered, error) {
	if book == nil {
		return []Rendered{}, nil
	}
	out := make([]Rendered, 0, len(book.Recipes))
	for _, r := range book.Recipes {
		text, err := d.Render(r)
		if err != nil {
			return out, err
		}
		out = append(out, Rendered{Name: r.Name, Kind: r.Kind, Output: text})
	}
	d.logger.Info("recipes rendered", "count", len(out))
	return out, nil
}

func (d *Director) computer(spec *ComputerSpec) (string, error) {
	var b *computer.Builder
	if spec.Preset != "" {
		preset, ok := computer.Presets[spec.Preset]
		if !ok {
			return "", buildkit.NewValidationError("preset", fmt.Sprintf("unknown preset %q", spec.Preset))
		}
		b = preset(d.opts...)
	} else {
		b = computer.New(d.opts...)
	}

	if spec.CPU != "" {
		b.CPU(spec.CPU)
	}
	if spec.RAM != "" {
		b.RAM(spec.RAM)
	}
	if spec.Storage != "" {
		b.Storage(spec.Storage)
	}
	if spec.GPU != "" {
		b.GPU(spec.GPU)
	}

	c, err := b.Build()
	if err != nil {
		return "", err
	}
	return c.Configuration(), nil
}

func (d *Director) query(spec *QuerySpec) (string, error) {
	b, err := query.New(spec.Table, d.opts...)
	if err != nil {
		return "", err
	}
	if spec.Select != nil {
		b.Select(spec.Select...)
	}
	for _, cond := range spec.Where {
		b.Where(cond)
	}
	for _, o := range spec.OrderBy {
		b.OrderBy(o.Field, query.Direction(o.Direction))
	}
	if spec.Limit != nil {
		b.Limit(*spec.Limit)
	}
	return b.Execute()
}

func (d *Director) pizza(spec *PizzaSpec) (string, error) {
	b, err := pizza.New(spec.Size, spec.Crust, d.opts...)
	if err != nil {
		return "", err
	}
	if spec.Label != "" {
		b.Label(spec.Label)
	}
	if spec.Sauce != "" {
		b.Sauce(spec.Sauce)
	}
	for _, ing := range spec.Ingredients {
		b.Ingredient(ing)
	}
	for _, extra := range spec.Extras {
		b.Extra(extra)
	}
	return b.Execute()
}
