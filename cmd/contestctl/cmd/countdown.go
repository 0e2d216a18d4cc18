package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/contestlet/contestlet/internal/clock"
	"github.com/contestlet/contestlet/internal/countdown"
	"github.com/contestlet/contestlet/internal/timezone"
)

var countdownTarget string

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Run a live countdown to a contest boundary",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := timezone.ParseInstant(countdownTarget)
		if err != nil {
			return err
		}

		clk := clock.NewReal()
		expired := make(chan struct{})
		cd := countdown.New(clk, target, func() { close(expired) })
		cd.Start()
		defer cd.Stop()

		if cd.Snapshot().Expired {
			fmt.Fprintln(cmd.OutOrStdout(), "target already passed")
			return nil
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		render := clk.NewTicker(time.Second)
		defer render.Stop()
		for {
			select {
			case <-render.Chan():
				b := cd.Snapshot()
				fmt.Fprintf(cmd.OutOrStdout(), "\r%dd %02dh %02dm %02ds ", b.Days, b.Hours, b.Minutes, b.Seconds)
			case <-expired:
				fmt.Fprintln(cmd.OutOrStdout(), "\rcontest ended            ")
				return nil
			case <-sig:
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
		}
	},
}

func init() {
	countdownCmd.Flags().StringVar(&countdownTarget, "target", "", "target instant (RFC 3339)")
	_ = countdownCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(countdownCmd)
}
