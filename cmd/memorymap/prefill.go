package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-memorymap/pkg/record"
)

func newPrefillCmd(a *app) *cobra.Command {
	r := record.New()
	var mapType string
	cmd := &cobra.Command{
		Use:   "prefill",
		Short: "Print a prefilled form link for a record",
		Long: `Prefill builds the form's viewform link with the given fields already
answered. Missing required fields are listed on stderr; the link is printed
regardless.

Example:
  memorymap prefill --form configs/form.example.yaml --privacy --year 2020 \
    --department Engineering --map-type campus --place "Library Plaza"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r.MapType = record.MapType(mapType)
			if r.MapType != record.MapTypeUnset && !r.MapType.Valid() {
				return fmt.Errorf("unknown map type %q", mapType)
			}
			if r.PhotoURL != "" {
				r.PhotoType = record.PhotoTypeURL
			}

			o, err := a.orchestrator()
			if err != nil {
				return err
			}
			if r.MapType == record.MapTypeWorld {
				if label, ok := o.Catalog().RegionLabel(r.Area); ok {
					r.Area = label
				}
			}
			for _, v := range record.Validate(r) {
				fmt.Fprintf(cmd.ErrOrStderr(), "missing %s (step %d)\n", v.Field, v.Step+1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), o.Sink().PrefilledURL(r))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&r.PrivacyAgreement, "privacy", false, "accept the privacy notice")
	flags.StringVar(&r.Name, "name", "", "submitter name")
	flags.StringVar(&r.AdmissionYear, "year", "", "admission year")
	flags.StringVar(&r.Department, "department", "", "department")
	flags.StringVar(&mapType, "map-type", "", "campus, japan or world")
	flags.StringVar(&r.Area, "area", "", "prefecture name, or region key or label for the world map")
	flags.StringVar(&r.PlaceName, "place", "", "place name")
	flags.StringVar(&r.MemoryContent, "memory", "", "memory text")
	flags.StringVar(&r.LocationInfo, "location", "", "location information")
	flags.StringVar(&r.PhotoURL, "photo-url", "", "photo link")
	flags.StringVar(&r.UsefulPhrase, "phrase", "", "useful phrase (world map only)")
	flags.BoolVar(&r.Agreement, "agreement", false, "accept the publication agreement")
	return cmd
}
