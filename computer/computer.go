package computer

import (
	"strings"

	"github.com/jdziat/buildkit"
)

// NoGPU is rendered when no GPU was configured.
const NoGPU = "no GPU"

// Computer is a hardware configuration. Every part is optional.
type Computer struct {
	cpu     buildkit.Optional[string]
	ram     buildkit.Optional[string]
	storage buildkit.Optional[string]
	gpu     buildkit.Optional[string]
}

// CPU returns the processor and whether one was set.
func (c Computer) CPU() (string, bool) { return c.cpu.Get() }

// RAM returns the memory size and whether one was set.
func (c Computer) RAM() (string, bool) { return c.ram.Get() }

// Storage returns the storage size and whether one was set.
func (c Computer) Storage() (string, bool) { return c.storage.Get() }

// GPU returns the graphics card and whether one was set.
func (c Computer) GPU() (string, bool) { return c.gpu.Get() }

// HasGPU reports whether a graphics card was configured.
func (c Computer) HasGPU() bool { return c.gpu.IsSet() }

// Configuration renders the configuration, one part per line.
// Unset parts render as "not set"; an unset GPU renders as "no GPU".
func (c Computer) Configuration() string {
	lines := []string{
		"Computer configuration",
		"CPU: " + buildkit.ValueOr(c.cpu, buildkit.PlaceholderNotSet),
		"RAM: " + buildkit.ValueOr(c.ram, buildkit.PlaceholderNotSet),
		"Storage: " + buildkit.ValueOr(c.storage, buildkit.PlaceholderNotSet),
		"GPU: " + buildkit.ValueOr(c.gpu, NoGPU),
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer.
func (c Computer) String() string {
	return c.Configuration()
}
