// Package cmd implements the contestctl command tree.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/contestlet/contestlet/internal/config"
	"github.com/contestlet/contestlet/internal/timezone"
)

var (
	cfgFile  string
	zoneFlag string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:           "contestctl",
	Short:         "Inspect and prepare contest schedules",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&zoneFlag, "timezone", "", "display timezone (overrides config)")
}

// displayZone resolves the effective admin display zone for this invocation.
func displayZone() timezone.ID {
	if zoneFlag != "" {
		return timezone.ID(zoneFlag)
	}
	return timezone.ID(cfg.Timezone)
}
