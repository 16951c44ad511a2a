package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"berichtsheft-bot/internal/service"
)

var (
	reportChatID int64
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the Berichtsheft PDF for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		rep, err := a.reports.Generate(reportChatID)
		if err != nil {
			var reportErr *service.ReportError
			if errors.As(err, &reportErr) {
				return fmt.Errorf("%s (incident %s): %w", reportErr.Error(), reportErr.ID, reportErr.Err)
			}
			return err
		}

		out := reportOut
		if out == "" {
			out = rep.FileName
		}
		if err := os.WriteFile(out, rep.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "📄 %s: %d weeks, %s - %s\n", out, rep.Weeks,
			rep.From.Format("02.01.2006"), rep.To.Format("02.01.2006"))
		return nil
	},
}

func init() {
	reportCmd.Flags().Int64Var(&reportChatID, "chat-id", 0, "Telegram chat id of the user")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (default berichtsheft-<start>-bis-<end>.pdf)")
	_ = reportCmd.MarkFlagRequired("chat-id")
}
