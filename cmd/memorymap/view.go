package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/placemark"
)

func (a *app) viewer() (*placemark.Viewer, error) {
	return placemark.New(
		placemark.WithCatalog(labels.ForLocale(a.settings.Locale)),
		placemark.WithLogger(a.logger),
		placemark.WithTemplateDir(a.settings.Templates),
	)
}

func newViewCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "view [url]",
		Short: "Render a KML marker document as HTML",
		Long: `View fetches a KML document and prints one block per placemark.
The URL defaults to kml_url from the settings file.

Example:
  memorymap view https://example.com/memories.kml --output markers.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := a.settings.KMLURL
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				return errors.New("no document URL: pass one or set kml_url")
			}

			viewer, err := a.viewer()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := viewer.Load(cmd.Context(), url, &buf); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "markers written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	cmd.Flags().String("templates", "", "directory whose templates replace the built-in ones")
	return cmd
}
