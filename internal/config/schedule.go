package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"berichtsheft-bot/internal/models"
)

// LoadDefaultSchedule читает график по умолчанию из YAML.
// Дни, которых нет в файле, берутся из models.DefaultWeekdayConfig.
//
//	monday:   {enabled: true, hours: 8}
//	saturday: {enabled: true, hours: 4}
func LoadDefaultSchedule(path string) (models.WeekdayConfig, error) {
	schedule := models.DefaultWeekdayConfig()
	if path == "" {
		return schedule, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schedule, fmt.Errorf("failed to read schedule file: %w", err)
	}

	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return models.DefaultWeekdayConfig(), fmt.Errorf("failed to parse schedule file: %w", err)
	}

	if !schedule.IsValid() {
		return models.DefaultWeekdayConfig(), fmt.Errorf("schedule file %s: hours must be between 0 and %d in 0.5 steps", path, models.MaxDayHours)
	}

	return schedule, nil
}
