package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed the store and serve the API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, closer, err := opts.build(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := container.Initialize(ctx); err != nil {
				return err
			}
			return container.Server().Run(ctx)
		},
	}
}
