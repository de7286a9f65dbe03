package cli

import (
	"log/slog"

	"github.com/1F47E/sol/pkg/advisory"
	"github.com/1F47E/sol/pkg/config"
	"github.com/1F47E/sol/pkg/latitude"
	"github.com/1F47E/sol/pkg/logging"
	"github.com/1F47E/sol/pkg/models"
	"github.com/1F47E/sol/pkg/tilt"
	"github.com/spf13/cobra"
)

const (
	flagFixed      = "fixed"
	flagAdjustable = "adjustable"
)

func newPlacementCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "placement",
		Short: "Determine the optimal placement for solar panels",
		Long: `Determine the optimal tilt and orientation for solar panels at a given latitude.

` + latitude.Usage,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlacement(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.fixed, flagFixed, "f", "", "Calculate optimal positioning for completely fixed solar at latitude `LAT`")
	cmd.Flags().StringVarP(&opts.adjustable, flagAdjustable, "a", "", "Calculate optimal positioning for seasonally adjusted solar at latitude `LAT`")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(advisory.FormatText), "Output format: text or json")

	cmd.MarkFlagsMutuallyExclusive(flagFixed, flagAdjustable)
	cmd.MarkFlagsOneRequired(flagFixed, flagAdjustable)

	return cmd
}

func runPlacement(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	format, err := advisory.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := advisory.NewPrinter(out,
		advisory.WithFormat(format),
		advisory.WithStyle(cfg.Color && isTerminal(out)),
	)

	if cmd.Flags().Changed(flagAdjustable) {
		lat := parseLatitude(opts.adjustable, logger)
		adv := tilt.Seasonal(lat, cfg.Seasonal.Offset)
		logger.Debug("seasonal placement",
			"offset", cfg.Seasonal.Offset,
			"summer", adv.Summer,
			"winter", adv.Winter,
			"orientation", adv.Orientation,
		)
		return printer.PrintSeasonal(adv)
	}

	lat := parseLatitude(opts.fixed, logger)
	adv := tilt.Fixed(lat)
	logger.Debug("fixed placement",
		"band", tilt.BandFor(lat.Degrees),
		"tilt", adv.Tilt,
		"orientation", adv.Orientation,
	)
	return printer.PrintFixed(adv)
}

// parseLatitude never fails. ParseStrict already yields the sentinel on bad
// input; the reason is only logged.
func parseLatitude(raw string, logger *slog.Logger) models.Latitude {
	lat, err := latitude.ParseStrict(raw)
	if err != nil {
		logger.Debug("latitude fell back to sentinel", "input", raw, "reason", err)
	} else {
		logger.Debug("parsed latitude", "input", raw, "latitude", lat)
	}
	return lat
}
