package computer

import "github.com/jdziat/buildkit"

// Basic returns a Builder preconfigured as an entry-level machine.
// Callers may keep configuring it before Build.
func Basic(opts ...buildkit.Option) *Builder {
	return New(opts...).
		CPU("Intel Core 2 Duo").
		RAM("4GB").
		Storage("1TB")
}

// Premium returns a Builder preconfigured as a high-end machine with a GPU.
func Premium(opts ...buildkit.Option) *Builder {
	return New(opts...).
		CPU("Intel Core i7").
		RAM("32GB").
		Storage("1TB").
		GPU("RTX 5090")
}

// Presets maps preset names to their constructors.
var Presets = map[string]func(...buildkit.Option) *Builder{
	"basic":   Basic,
	"premium": Premium,
}
