package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/buildkit/computer"
)

func newComputerCommand(c *cli) *cobra.Command {
	var preset, cpu, ram, storage, gpu string

	cmd := &cobra.Command{
		Use:     "computer",
		Short:   "Render a computer configuration",
		Example: `  buildkit computer --preset basic --gpu "RTX 4060"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b *computer.Builder
			if preset != "" {
				newPreset, ok := computer.Presets[preset]
				if !ok {
					return fmt.Errorf("unknown preset %q (available: %s)", preset, presetNames())
				}
				b = newPreset(c.options()...)
			} else {
				b = computer.New(c.options()...)
			}

			flags := cmd.Flags()
			if flags.Changed("cpu") {
				b.CPU(cpu)
			}
			if flags.Changed("ram") {
				b.RAM(ram)
			}
			if flags.Changed("storage") {
				b.Storage(storage)
			}
			if flags.Changed("gpu") {
				b.GPU(gpu)
			}

			pc, err := b.Build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pc.Configuration())
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "start from a preset: "+presetNames())
	cmd.Flags().StringVar(&cpu, "cpu", "", "processor")
	cmd.Flags().StringVar(&ram, "ram", "", "memory size")
	cmd.Flags().StringVar(&storage, "storage", "", "storage size")
	cmd.Flags().StringVar(&gpu, "gpu", "", "graphics card")
	return cmd
}

func presetNames() string {
	names := make([]string, 0, len(computer.Presets))
	for name := range computer.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
