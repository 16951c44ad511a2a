package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDatabaseURL = "berichtsheft.db"
	DefaultCompanyName = "Ausbildungsbetrieb"
	DefaultLogLevel    = "info"
)

type BotConfig struct {
	TelegramToken   string
	BaseAdminChatID int64
	DatabaseURL     string
	Debug           bool
	LogLevel        string

	// Название компании в шапке отчета
	CompanyName string
	// YAML с графиком по умолчанию для новых пользователей, пусто - Пн-Пт по 8 часов
	DefaultScheduleFile string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*BotConfig, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf(".env not loaded: %s", err.Error())
	}

	cfg := &BotConfig{
		TelegramToken:       getEnv("TELEGRAM_BOT_TOKEN", ""),
		BaseAdminChatID:     getEnvAsInt("BASE_ADMIN_CHAT_ID", 0),
		DatabaseURL:         getEnv("DATABASE_URL", DefaultDatabaseURL),
		Debug:               getEnvAsBool("BOT_DEBUG", false),
		LogLevel:            getEnv("LOG_LEVEL", DefaultLogLevel),
		CompanyName:         getEnv("COMPANY_NAME", DefaultCompanyName),
		DefaultScheduleFile: getEnv("DEFAULT_SCHEDULE_FILE", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("could not get db url")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateForBot проверяет ключи, без которых бот не запустится
func (c *BotConfig) ValidateForBot() error {
	if c.TelegramToken == "" {
		return errors.New("could not get bot token")
	}
	if c.BaseAdminChatID < 0 {
		return errors.New("admin chat id must not be negative")
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
