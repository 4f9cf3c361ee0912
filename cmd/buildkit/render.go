package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/buildkit/recipe"
)

func newRenderCommand(c *cli) *cobra.Command {
	var file, name string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the recipes of a YAML recipe file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if file == "" {
				file = c.cfg.Recipes.Path
			}
			book, err := recipe.LoadFile(file)
			if err != nil {
				return err
			}

			director := recipe.NewDirector(c.logger)
			if name != "" {
				r, ok := book.Find(name)
				if !ok {
					return fmt.Errorf("recipe %q not found in %s", name, file)
				}
				out, err := director.Render(r)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, out)
				return nil
			}

			rendered, err := director.RenderAll(book)
			if err != nil {
				return err
			}
			for i, r := range rendered {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "# %s (%s)\n", r.Name, r.Kind)
				fmt.Fprintln(w, r.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe file (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "render only the named recipe")
	return cmd
}
