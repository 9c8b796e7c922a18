// Package main provides the memorymap CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-memorymap/pkg/renderers/tui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands. The zero value is ready for use;
// tests set driver and endpoint to run without a terminal or network.
type app struct {
	configFile string
	settings   settings
	logger     *log.Logger
	logCloser  io.Closer

	driver   tui.PromptDriver
	endpoint string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "memorymap",
		Short: "Collect memory placemarks and render KML marker documents",
		Long: `memorymap walks a contributor through the memory placemark wizard,
posts the record to the configured form endpoint, and renders KML marker
documents as HTML fragments.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			s, err := loadSettings(a.configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			a.settings = s

			logger, closer, err := openLogger(s.LogFile, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			a.logger, a.logCloser = logger, closer
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "settings file (YAML)")
	flags.String("form", "", "form field mapping file (JSON or YAML)")
	flags.String("locale", "", "label locale: ja or en")
	flags.Duration("timeout", 0, "submission timeout")
	flags.String("log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(newSubmitCmd(a))
	root.AddCommand(newViewCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newPrefillCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "memorymap %s\n", version)
		},
	}
}
