package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/subline/internal/app"
	"github.com/five82/subline/internal/config"
	"github.com/five82/subline/internal/prefs"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "subline: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "subline",
		Short: "Live transcript overlay for the terminal",
		Long: `subline shows the most recent lines of a live transcript as a scrolling
caption overlay. Transcripts come from an HTTP endpoint (GET /api/transcript)
or from a local text or YAML file that is watched for changes.`,
		Example: `  # Follow the transcript server configured in config.toml
  subline

  # Follow a local file with the background panel
  subline --file ~/captions/live.txt --panel on

  # Poll faster
  subline --poll 200ms`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (default "+prefs.DefaultPath()+")")
	cmd.Flags().DurationVar(&opts.PollEvery, "poll", 0, "refresh interval (defaults to poll_ms from config)")
	cmd.Flags().StringVar(&opts.File, "file", "", "read the transcript from this file instead of HTTP")
	cmd.Flags().StringVar(&opts.Panel, "panel", "", `force the background panel "on" or "off"`)

	return cmd
}
