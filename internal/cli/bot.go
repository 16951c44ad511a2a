package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"berichtsheft-bot/internal/handler"
	"berichtsheft-bot/pkg/telegram"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateForBot(); err != nil {
			return err
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if migrated, err := a.entryRepo.MigrateLegacyActivities(); err != nil {
			logrus.WithError(err).Warn("Legacy activity migration failed")
		} else if migrated > 0 {
			logrus.Infof("Converted %d legacy entries", migrated)
		}

		// Инициализируем администратора из конфига
		if err := a.users.InitializeAdmin(cfg.BaseAdminChatID); err != nil {
			logrus.Warnf("Failed to initialize admin: %v", err)
		} else if cfg.BaseAdminChatID != 0 {
			logrus.Infof("Admin initialized with chat ID: %d", cfg.BaseAdminChatID)
		}

		client, err := telegram.NewClient(cfg.TelegramToken, cfg.Debug)
		if err != nil {
			return err
		}
		logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

		botHandler := handler.NewHandler(
			client,
			a.users,
			a.schedules,
			a.vacations,
			a.entries,
			a.reports,
			a.stats,
			cfg,
		)

		updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

		// Обработка сигналов для graceful shutdown
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		logrus.Info("Bot started. Press Ctrl+C to stop.")
		runUntilSignal(stop, func() { botHandler.HandleUpdates(updates) }, client.Bot.StopReceivingUpdates)

		logrus.Info("Bot stopped gracefully")
		return nil
	},
}

// runUntilSignal запускает handle в горутине и после сигнала вызывает shutdown.
// Возвращается только когда handle закончил, чтобы база не закрылась под текущим обновлением.
func runUntilSignal(stop <-chan os.Signal, handle func(), shutdown func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		handle()
	}()

	<-stop
	shutdown()
	<-done
}
