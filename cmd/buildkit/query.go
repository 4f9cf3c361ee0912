package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdziat/buildkit/query"
)

func newQueryCommand(c *cli) *cobra.Command {
	var (
		fields     []string
		conditions []string
		orders     []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "query <table>",
		Short: "Render a SQL SELECT statement",
		Example: `  buildkit query users --select id,name,email \
    --where "age > 18" --where "country = 'CR'" \
    --order-by name:ASC --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := query.New(args[0], c.options()...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("select") {
				for i := range fields {
					fields[i] = strings.TrimSpace(fields[i])
				}
				b.Select(fields...)
			}
			for _, cond := range conditions {
				b.Where(cond)
			}
			for _, o := range orders {
				field, dir := parseOrder(o)
				b.OrderBy(field, dir)
			}
			if cmd.Flags().Changed("limit") {
				b.Limit(limit)
			}

			sql, err := b.Execute()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sql)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "select", nil, "comma-separated fields to select (default all)")
	cmd.Flags().StringArrayVar(&conditions, "where", nil, "condition, repeatable; joined with AND")
	cmd.Flags().StringArrayVar(&orders, "order-by", nil, "field[:ASC|DESC], repeatable")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows")
	return cmd
}

// parseOrder splits "field:DIR"; a missing direction is left empty so the
// builder applies its default.
func parseOrder(s string) (string, query.Direction) {
	field, dir, _ := strings.Cut(s, ":")
	return field, query.Direction(dir)
}
