// Package logging общая настройка logrus для репозиториев и сервисов
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu    sync.RWMutex
	level = logrus.InfoLevel
)

// SetLevel задает уровень для новых логгеров и для стандартного логгера logrus
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}

	mu.Lock()
	level = lvl
	mu.Unlock()

	logrus.SetLevel(lvl)
	return nil
}

// New создает логгер с единым форматом времени
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	mu.RLock()
	logger.SetLevel(level)
	mu.RUnlock()

	return logger
}
