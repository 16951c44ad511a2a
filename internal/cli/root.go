// Package cli команды berichtsheft: bot, report, migrate
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"berichtsheft-bot/internal/config"
	"berichtsheft-bot/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	logLevel string
	cfg      *config.BotConfig
)

var rootCmd = &cobra.Command{
	Use:   "berichtsheft",
	Short: "Telegram bot for the weekly apprenticeship training log",
	Long: `berichtsheft keeps a daily log of apprenticeship activities and renders
the weekly Ausbildungsnachweis pages as a PDF ready to be signed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if err := logging.SetLevel(loaded.LogLevel); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "berichtsheft %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion задает данные сборки
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute запускает корневую команду
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
