package cli

import (
	"bytes"
	"os"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"berichtsheft-bot/internal/config"
	"berichtsheft-bot/internal/database"
)

func TestVersionCommand(t *testing.T) {
	t.Setenv("DATABASE_URL", "test.db")
	t.Setenv("LOG_LEVEL", "warn")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		logLevel = ""
	})

	if err := Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "berichtsheft dev") {
		t.Errorf("output = %q", out.String())
	}
	if cfg == nil || cfg.LogLevel != "error" {
		t.Errorf("cfg = %+v, want log level from flag", cfg)
	}
}

func TestRootRejectsInvalidLogLevel(t *testing.T) {
	rootCmd.SetArgs([]string{"version", "--log-level", "loud"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		logLevel = ""
	})

	if err := Execute(); err == nil {
		t.Error("invalid log level accepted")
	}
}

func TestWireBuildsServices(t *testing.T) {
	db, err := database.OpenInMemory("cli_wire")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	a, err := wire(db, &config.BotConfig{CompanyName: "Muster GmbH", DefaultScheduleFile: "missing.yaml"})
	if err != nil {
		t.Fatalf("wire: %v", err)
	}

	user, err := a.users.CreateUser(7, "", "Erika", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	// файл графика не найден, используется Пн-Пт по 8 часов
	schedule, err := a.schedules.GetConfig(user.ID)
	if err != nil || schedule.WeeklyHours() != 40 {
		t.Errorf("schedule = %+v, %v", schedule, err)
	}

	migrated, err := a.entryRepo.MigrateLegacyActivities()
	if err != nil || migrated != 0 {
		t.Errorf("MigrateLegacyActivities = %d, %v", migrated, err)
	}
}

func TestRunUntilSignalWaitsForHandler(t *testing.T) {
	updates := make(chan int, 1)
	updates <- 1
	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGTERM

	var processed atomic.Bool
	handle := func() {
		for range updates {
			time.Sleep(20 * time.Millisecond)
			processed.Store(true)
		}
	}

	runUntilSignal(stop, handle, func() { close(updates) })

	if !processed.Load() {
		t.Error("returned before the pending update was processed")
	}
}
