package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/buildkit/pizza"
)

func newPizzaCommand(c *cli) *cobra.Command {
	var (
		size, crust  string
		label, sauce string
		ingredients  []string
		extras       []string
	)

	cmd := &cobra.Command{
		Use:     "pizza",
		Short:   "Render a pizza order ticket",
		Example: `  buildkit pizza --size Medium --crust "Whole wheat" --sauce tomato --extra mushroom`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") {
				size = c.cfg.Defaults.PizzaSize
			}
			if !cmd.Flags().Changed("crust") {
				crust = c.cfg.Defaults.PizzaCrust
			}

			b, err := pizza.New(size, crust, c.options()...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("label") {
				b.Label(label)
			}
			if cmd.Flags().Changed("sauce") {
				b.Sauce(sauce)
			}
			for _, ing := range ingredients {
				b.Ingredient(ing)
			}
			for _, extra := range extras {
				b.Extra(extra)
			}

			ticket, err := b.Execute()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ticket)
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "pizza size (default from config)")
	cmd.Flags().StringVar(&crust, "crust", "", "crust type (default from config)")
	cmd.Flags().StringVar(&label, "label", "", "ticket header")
	cmd.Flags().StringVar(&sauce, "sauce", "", "sauce")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "ingredient, repeatable")
	cmd.Flags().StringArrayVar(&extras, "extra", nil, "extra topping, repeatable")
	return cmd
}
