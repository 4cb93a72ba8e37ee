// Command votegraph builds the legislator similarity graph and serves it.
package main

import (
	"os"

	"github.com/LuizVenosa/GraficoCameraSite/internal/config"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger/console"
	"github.com/spf13/cobra"
)

var (
	cfg   config.Config
	debug bool

	rootCmd = &cobra.Command{
		Use:           "votegraph",
		Short:         "Build and serve a similarity graph of legislators from roll-call votes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			cfg = config.LoadConfig()
			logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
				Debug: debug || cfg.Debug,
			}))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(newBuildCmd(), newServeCmd(), newPublishCmd(), newNeighborsCmd())
}

func main() {
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{}))
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", "err", err)
		os.Exit(1)
	}
}
