package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contestlet/contestlet/internal/clock"
	"github.com/contestlet/contestlet/internal/contest"
	"github.com/contestlet/contestlet/internal/countdown"
	"github.com/contestlet/contestlet/internal/timezone"
)

var (
	statusStart  string
	statusEnd    string
	statusWinner bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compute the lifecycle status of a contest window",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := timezone.ParseInstant(statusStart)
		if err != nil {
			return err
		}
		end, err := timezone.ParseInstant(statusEnd)
		if err != nil {
			return err
		}
		w := contest.Window{Start: start, End: end}
		if err := w.Validate(); err != nil {
			return err
		}

		now := clock.NewReal().Now()
		status := contest.ComputeStatus(now, w, statusWinner)

		zone := displayZone()
		localStart, err := timezone.FormatForDisplay(start, zone, timezone.StyleShort)
		if err != nil {
			return err
		}
		localEnd, err := timezone.FormatForDisplay(end, zone, timezone.StyleShort)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status:  %s\n", status)
		fmt.Fprintf(out, "starts:  %s (%s)\n", localStart, zone)
		fmt.Fprintf(out, "ends:    %s (%s)\n", localEnd, zone)

		// Show remaining time toward whichever boundary is next.
		switch status {
		case contest.StatusUpcoming:
			b := countdown.ComputeBreakdown(now, start)
			fmt.Fprintf(out, "starts in %dd %dh %dm %ds\n", b.Days, b.Hours, b.Minutes, b.Seconds)
		case contest.StatusActive:
			b := countdown.ComputeBreakdown(now, end)
			fmt.Fprintf(out, "ends in %dd %dh %dm %ds\n", b.Days, b.Hours, b.Minutes, b.Seconds)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusStart, "start", "", "contest start instant (RFC 3339)")
	statusCmd.Flags().StringVar(&statusEnd, "end", "", "contest end instant (RFC 3339)")
	statusCmd.Flags().BoolVar(&statusWinner, "winner", false, "a winner has been recorded")
	_ = statusCmd.MarkFlagRequired("start")
	_ = statusCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(statusCmd)
}
