package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-mock-backend/router"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every registered route and its required parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, closer, err := opts.build(io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			return printRoutes(cmd.OutOrStdout(), container.Registry().Routes())
		},
	}
}

func printRoutes(w io.Writer, routes []router.Route) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATTERN\tPARAMS")
	for _, r := range routes {
		params := strings.Join(r.Params, ",")
		if params == "" {
			params = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Method, r.Pattern, params)
	}
	return tw.Flush()
}
