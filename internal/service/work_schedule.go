package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/report"
	"berichtsheft-bot/internal/repository"
)

type WorkScheduleService struct {
	repo            repository.WorkScheduleRepository
	defaultSchedule models.WeekdayConfig
	logger          *logrus.Logger
}

func NewWorkScheduleService(repo repository.WorkScheduleRepository, defaultSchedule models.WeekdayConfig) *WorkScheduleService {
	return &WorkScheduleService{
		repo:            repo,
		defaultSchedule: defaultSchedule,
		logger:          logging.New(),
	}
}

// GetConfig возвращает график пользователя, для пользователя без графика - график по умолчанию
func (s *WorkScheduleService) GetConfig(userID uint) (models.WeekdayConfig, error) {
	schedule, err := s.repo.GetByUserID(userID)
	if err != nil {
		return models.WeekdayConfig{}, fmt.Errorf("ошибка получения графика: %w", err)
	}
	if schedule == nil {
		return s.defaultSchedule, nil
	}

	return schedule.WeekdayConfig, nil
}

// SetDay включает или выключает день недели и задает его часы.
// Для выключенного дня часы сбрасываются в 0.
func (s *WorkScheduleService) SetDay(userID uint, weekday time.Weekday, enabled bool, hours float64) (models.WeekdayConfig, error) {
	cfg, err := s.GetConfig(userID)
	if err != nil {
		return models.WeekdayConfig{}, err
	}

	if !enabled {
		hours = 0
	}
	day := models.DayConfig{Enabled: enabled, Hours: hours}
	if !day.IsValid() {
		return models.WeekdayConfig{}, fmt.Errorf("часы должны быть от 0 до %d с шагом 0.5", models.MaxDayHours)
	}
	if enabled && hours == 0 {
		return models.WeekdayConfig{}, fmt.Errorf("для рабочего дня укажите часы больше нуля")
	}

	cfg.SetWeekday(weekday, day)
	if err := s.SaveConfig(userID, cfg); err != nil {
		return models.WeekdayConfig{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"weekday": weekday.String(),
		"enabled": enabled,
		"hours":   hours,
	}).Info("Weekday updated")

	return cfg, nil
}

// SaveConfig сохраняет график целиком
func (s *WorkScheduleService) SaveConfig(userID uint, cfg models.WeekdayConfig) error {
	if !cfg.IsValid() {
		return fmt.Errorf("часы должны быть от 0 до %d с шагом 0.5", models.MaxDayHours)
	}

	schedule := &models.WorkSchedule{UserID: userID, WeekdayConfig: cfg}
	if err := s.repo.Save(schedule); err != nil {
		return fmt.Errorf("ошибка сохранения графика: %w", err)
	}
	return nil
}

// FormatConfig форматирует график для вывода
func (s *WorkScheduleService) FormatConfig(cfg models.WeekdayConfig) string {
	var lines []string
	lines = append(lines, "📅 Рабочий график:")
	lines = append(lines, "")

	for i, name := range report.DayNames {
		day := cfg.Day(i)
		if day.Enabled {
			lines = append(lines, fmt.Sprintf("✅ %s: %sч", name, report.FormatHours(day.Hours)))
		} else {
			lines = append(lines, fmt.Sprintf("⏭️ %s: выходной", name))
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📈 В неделю: %sч", report.FormatHours(cfg.WeeklyHours())))

	return strings.Join(lines, "\n")
}
