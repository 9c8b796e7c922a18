package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-memorymap/pkg/record"
	"github.com/goliatone/go-memorymap/pkg/renderers/tui"
)

func newSubmitCmd(a *app) *cobra.Command {
	var csvDir string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Run the placemark wizard and post the record",
		Long: `Submit prompts for every wizard step in the terminal, then posts the
record to the form endpoint from the mapping file.

Example:
  memorymap submit --form configs/form.example.yaml --csv-dir backups`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.orchestrator()
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(cmd.OutOrStdout(), o.Catalog(), tui.DefaultTheme())
			w := o.NewWizard(presenter)
			opts := []tui.Option{
				tui.WithPromptDriver(a.driver),
				tui.WithLogger(a.logger),
			}
			if csvDir != "" {
				opts = append(opts, tui.WithExporter(func(r record.Record) (string, error) {
					return o.ExportCSV(csvDir, r)
				}))
			}

			err = tui.NewSession(w, presenter, opts...).Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}

			submitted := w.Record()
			a.logger.Printf("submitted session %s; prefilled link: %s", w.SessionID(), o.Sink().PrefilledURL(submitted))
			if csvDir != "" {
				path, err := o.ExportCSV(csvDir, submitted)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), o.Catalog().Prompts.Exported+path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvDir, "csv-dir", "", "write a CSV backup here after a successful submit")
	return cmd
}
