package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	configPath string
	html       bool
	json       bool
	verbose    bool
}

func main() {
	// stop tokenizing pending files on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:          "xmlmixed-lex [flags] FILE...",
		Short:        "Print the token stream of mixed XML documents",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if opts.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if err := run(cmd.Context(), cmd.OutOrStdout(), opts, args); err != nil {
				log.Error().Err(err).Msg("tokenize failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (yaml, json or toml)")
	cmd.Flags().BoolVar(&opts.html, "html", false, "use HTML defaults for the outer markup")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per token")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log mode transitions")
	return cmd
}
