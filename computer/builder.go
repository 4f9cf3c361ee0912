package computer

import (
	"github.com/jdziat/buildkit"
)

// Builder assembles a Computer.
type Builder struct {
	core buildkit.Builder[Computer]
}

// New creates a Builder. A computer has no required parts, so New cannot fail.
func New(opts ...buildkit.Option) *Builder {
	opts = append([]buildkit.Option{buildkit.WithName("computer")}, opts...)
	return &Builder{
		core: buildkit.NewBuilder(&Computer{}, opts...),
	}
}

// CPU sets the processor.
func (b *Builder) CPU(cpu string) *Builder {
	return b.part("cpu", cpu, func(c *Computer, v buildkit.Optional[string]) { c.cpu = v })
}

// RAM sets the memory size.
func (b *Builder) RAM(ram string) *Builder {
	return b.part("ram", ram, func(c *Computer, v buildkit.Optional[string]) { c.ram = v })
}

// Storage sets the storage size.
func (b *Builder) Storage(storage string) *Builder {
	return b.part("storage", storage, func(c *Computer, v buildkit.Optional[string]) { c.storage = v })
}

// GPU sets the graphics card.
func (b *Builder) GPU(gpu string) *Builder {
	return b.part("gpu", gpu, func(c *Computer, v buildkit.Optional[string]) { c.gpu = v })
}

// part overwrites one scalar part; the last call wins.
func (b *Builder) part(name, value string, set func(*Computer, buildkit.Optional[string])) *Builder {
	b.core.Step(name, buildkit.ValidateNotBlank(name, value), func(c *Computer) {
		set(c, buildkit.Some(value))
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

// Build returns the assembled computer. The value is a copy: configuring b
// afterwards does not change it.
func (b *Builder) Build() (Computer, error) {
	return buildkit.Finalize(&b.core, func(c *Computer) Computer {
		return *c
	}).Unwrap()
}

// MustBuild is like Build but panics if a step was rejected.
func (b *Builder) MustBuild() Computer {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
