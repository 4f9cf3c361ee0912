package recipe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/buildkit"
)

// Kind names the product a recipe builds.
type Kind string

// Recipe kinds.
const (
	KindComputer Kind = "computer"
	KindQuery    Kind = "query"
	KindPizza    Kind = "pizza"
)

// Book is a collection of recipes, the top level of a recipe file.
type Book struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Recipe describes one product. Exactly the section matching Kind is used.
type Recipe struct {
	Name     string        `yaml:"name"`
	Kind     Kind          `yaml:"kind"`
	Computer *ComputerSpec `yaml:"computer,omitempty"`
	Query    *QuerySpec    `yaml:"query,omitempty"`
	Pizza    *PizzaSpec    `yaml:"pizza,omitempty"`
}

// ComputerSpec configures a computer. Preset, when set, is applied first and
// the explicit parts override it.
type ComputerSpec struct {
	Preset  string `yaml:"preset,omitempty"`
	CPU     string `yaml:"cpu,omitempty"`
	RAM     string `yaml:"ram,omitempty"`
	Storage string `yaml:"storage,omitempty"`
	GPU     string `yaml:"gpu,omitempty"`
}

// QuerySpec configures a SELECT statement.
type QuerySpec struct {
	Table string `yaml:"table"`
	// Select is applied only when present; an empty list selects all fields.
	Select  []string    `yaml:"select,omitempty"`
	Where   []string    `yaml:"where,omitempty"`
	OrderBy []OrderSpec `yaml:"order_by,omitempty"`
	Limit   *int        `yaml:"limit,omitempty"`
}

// OrderSpec is one ORDER BY term. Direction defaults to ASC.
type OrderSpec struct {
	Field     string `yaml:"field"`
	Direction string `yaml:"direction,omitempty"`
}

// PizzaSpec configures a pizza order.
type PizzaSpec struct {
	Size        string   `yaml:"size"`
	Crust       string   `yaml:"crust"`
	Label       string   `yaml:"label,omitempty"`
	Sauce       string   `yaml:"sauce,omitempty"`
	Ingredients []string `yaml:"ingredients,omitempty"`
	Extras      []string `yaml:"extras,omitempty"`
}

// Decode reads a recipe book from YAML. Unknown keys are rejected. An empty
// document decodes to an empty book.
func Decode(r io.Reader) (*Book, error) {
	var book Book
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil {
		if errors.Is(err, io.EOF) {
			return &book, nil
		}
		return nil, fmt.Errorf("buildkit: decoding recipes: %w", err)
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &book, nil
}

// LoadFile reads a recipe book from path.
func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buildkit: opening recipes: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks that every recipe is named, of a known kind and carries
// the matching section. It does not check the values inside a section; the
// builders do that when the recipe is rendered.
func (b *Book) Validate() error {
	seen := make(map[string]bool, len(b.Recipes))
	for i, r := range b.Recipes {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recipe #%d: %w", i, err)
		}
		if seen[r.Name] {
			return fmt.Errorf("recipe #%d: %w", i,
				buildkit.NewValidationError("name", fmt.Sprintf("duplicate recipe %q", r.Name)))
		}
		seen[r.Name] = true
	}
	return nil
}

// Find returns the recipe named name.
func (b *Book) Find(name string) (Recipe, bool) {
	for _, r := range b.Recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}

// Validate checks the recipe's name, kind and section.
func (r Recipe) Validate() error {
	if err := buildkit.ValidateNotBlank("name", r.Name); err != nil {
		return err
	}
	var present bool
	switch r.Kind {
	case KindComputer:
		present = r.Computer != nil
	case KindQuery:
		present = r.Query != nil
	case KindPizza:
		present = r.Pizza != nil
	default:
		return buildkit.ValidateOneOf("kind", string(r.Kind),
			string(KindComputer), string(KindQuery), string(KindPizza))
	}
	if !present {
		return buildkit.NewValidationError(string(r.Kind), "section is required for kind "+string(r.Kind))
	}
	return nil
}
