package config

import (
	"os"
	"path/filepath"
	"testing"

	"berichtsheft-bot/internal/models"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_BOT_TOKEN":    "123:abc",
		"BASE_ADMIN_CHAT_ID":    "4242",
		"DATABASE_URL":          "test.db",
		"BOT_DEBUG":             "true",
		"LOG_LEVEL":             "debug",
		"COMPANY_NAME":          "ACME GmbH",
		"DEFAULT_SCHEDULE_FILE": "schedule.yaml",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := BotConfig{
		TelegramToken:       "123:abc",
		BaseAdminChatID:     4242,
		DatabaseURL:         "test.db",
		Debug:               true,
		LogLevel:            "debug",
		CompanyName:         "ACME GmbH",
		DefaultScheduleFile: "schedule.yaml",
	}
	if *cfg != want {
		t.Errorf("Load = %+v, want %+v", *cfg, want)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	setEnv(t, map[string]string{
		"DATABASE_URL":       "test.db",
		"LOG_LEVEL":          "info",
		"BASE_ADMIN_CHAT_ID": "not-a-number",
		"BOT_DEBUG":          "maybe",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseAdminChatID != 0 || cfg.Debug {
		t.Errorf("cfg = %+v, want zero admin id and debug off", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"empty database url", map[string]string{"DATABASE_URL": "", "LOG_LEVEL": "info"}},
		{"unknown log level", map[string]string{"DATABASE_URL": "x.db", "LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			if _, err := Load(); err == nil {
				t.Error("Load() error = nil")
			}
		})
	}
}

func TestValidateForBot(t *testing.T) {
	cfg := &BotConfig{DatabaseURL: "x.db"}
	if err := cfg.ValidateForBot(); err == nil {
		t.Error("ValidateForBot without token = nil")
	}

	cfg.TelegramToken = "123:abc"
	if err := cfg.ValidateForBot(); err != nil {
		t.Errorf("ValidateForBot = %v", err)
	}

	cfg.BaseAdminChatID = -5
	if err := cfg.ValidateForBot(); err == nil {
		t.Error("ValidateForBot with negative admin id = nil")
	}
}

func TestLoadDefaultSchedule(t *testing.T) {
	schedule, err := LoadDefaultSchedule("")
	if err != nil {
		t.Fatalf("LoadDefaultSchedule(\"\"): %v", err)
	}
	if schedule != models.DefaultWeekdayConfig() {
		t.Errorf("empty path schedule = %+v", schedule)
	}

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	content := "friday:\n  enabled: true\n  hours: 6.5\nsaturday:\n  enabled: true\n  hours: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	schedule, err = LoadDefaultSchedule(path)
	if err != nil {
		t.Fatalf("LoadDefaultSchedule: %v", err)
	}
	if schedule.Friday.Hours != 6.5 || !schedule.Saturday.Enabled || schedule.Saturday.Hours != 4 {
		t.Errorf("schedule = %+v", schedule)
	}
	if schedule.Monday != (models.DayConfig{Enabled: true, Hours: 8}) {
		t.Errorf("monday = %+v, want default", schedule.Monday)
	}
	if schedule.WeeklyHours() != 42.5 {
		t.Errorf("WeeklyHours = %v, want 42.5", schedule.WeeklyHours())
	}
}

func TestLoadDefaultScheduleErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDefaultSchedule(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: err = nil")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("monday:\n  enabled: true\n  hours: 7.25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	schedule, err := LoadDefaultSchedule(bad)
	if err == nil {
		t.Error("invalid hours: err = nil")
	}
	if schedule != models.DefaultWeekdayConfig() {
		t.Errorf("schedule on error = %+v, want default", schedule)
	}
}
