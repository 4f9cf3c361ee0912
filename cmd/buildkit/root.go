package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/buildkit"
	"github.com/jdziat/buildkit/internal/config"
)

// cli carries state shared by every subcommand once the root has run its
// pre-run hook.
type cli struct {
	configPath string
	cfg        *config.Config
	logger     buildkit.StructuredLogger
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "buildkit [command]",
		Short: "Build computers, SQL queries and pizza orders step by step",
		Long: `buildkit renders products assembled through fluent builders.

Each subcommand maps its flags to builder steps; "render" replays the
recipes of a YAML recipe file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: c.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "",
		"path to a config file (default: nearest .buildkit.yaml)")

	cmd.AddCommand(
		newQueryCommand(c),
		newPizzaCommand(c),
		newComputerCommand(c),
		newRenderCommand(c),
		newVersionCommand(),
	)
	return cmd
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFromFile(c.configPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	c.logger = buildkit.NewSlogAdapter(c.cfg.NewLogger(cmd.ErrOrStderr()))
	c.logger.Debug("config loaded", "recipes", c.cfg.Recipes.Path, "level", c.cfg.Log.Level)
	return nil
}

// options returns the builder options every subcommand passes on.
func (c *cli) options() []buildkit.Option {
	return []buildkit.Option{buildkit.WithLogger(c.logger)}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "buildkit version %s\n", version)
			return nil
		},
	}
}
