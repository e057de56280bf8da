// Package cli implements the brme command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"brme/config"
	"brme/pkg/log"
)

const version = "brme v0.3.0"

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCommand builds the brme command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "brme",
		Short: "brme - Portuguese event sentences to calendar events",
		Long: `brme reads sentences such as "amanhã 14h reunião com João" and resolves
them into events with exact start and end timestamps.

The same engine backs the Telegram bot and the HTTP API.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newResolveCommand(opts),
		newAuthCommand(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *rootOptions) load() (*config.Config, log.Logger, error) {
	cfg, err := config.LoadFile(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewNop()
	if o.verbose {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         log.ModeDevelopment,
			Encoding:     log.EncodingConsole,
			ColorEnabled: true,
		})
	}
	return cfg, logger, nil
}
