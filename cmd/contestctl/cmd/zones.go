package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contestlet/contestlet/internal/clock"
	"github.com/contestlet/contestlet/internal/timezone"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List supported display timezones",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := clock.NewReal().Now()
		for _, z := range timezone.Supported() {
			off, err := timezone.CurrentOffset(z.ID, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s UTC%s  %s\n", z.ID, off, z.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
