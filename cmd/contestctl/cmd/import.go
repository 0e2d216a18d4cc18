package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/contestlet/contestlet/internal/campaign"
	"github.com/contestlet/contestlet/internal/clock"
	"github.com/contestlet/contestlet/internal/timezone"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Validate a campaign payload and reconcile its dates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		payload, err := campaign.DecodePayload(data)
		if err != nil {
			return err
		}
		triple, err := payload.Dates()
		if err != nil {
			return err
		}

		zone := payload.Zone(displayZone())
		loc, err := timezone.Lookup(zone)
		if err != nil {
			return err
		}

		rec := campaign.NewReconcilerWithDefault(clock.NewReal(), cfg.DefaultDurationDays)
		out, err := rec.Reconcile(triple, loc)
		if err != nil {
			return err
		}

		log.Info().
			Str("name", payload.Name).
			Str("timezone", string(zone)).
			Time("start", *out.Start).
			Time("end", *out.End).
			Int("duration_days", *out.DurationDays).
			Msg("campaign dates reconciled")

		localStart, err := timezone.UTCToLocal(*out.Start, zone)
		if err != nil {
			return err
		}
		localEnd, err := timezone.UTCToLocal(*out.End, zone)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "start:    %s (%s local %s)\n", timezone.FormatInstant(*out.Start), localStart, zone)
		fmt.Fprintf(w, "end:      %s (%s local %s)\n", timezone.FormatInstant(*out.End), localEnd, zone)
		fmt.Fprintf(w, "duration: %d days\n", *out.DurationDays)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
