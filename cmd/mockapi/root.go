package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-mock-backend/config"
	"github.com/goliatone/go-mock-backend/internal/logging"
	"github.com/goliatone/go-mock-backend/pkg/di"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "mockapi",
		Short:        "In-memory mock backend for the admin frontend",
		Long:         `Serve seeded client, TPP, scope, org, relation and environment collections over a JSON REST API.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file (default ./mockapi.yaml if present)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newRoutesCmd(opts))
	return cmd
}

// build loads configuration and assembles the container. The returned
// closer releases the log file.
func (o *rootOptions) build(stdout io.Writer) (*di.Container, io.Closer, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, closer, err := logging.New(cfg.Log, stdout)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)

	container, err := di.NewContainer(*cfg, logger)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return container, closer, nil
}
