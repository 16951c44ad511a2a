package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/allocation"
	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/report"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/timecalc"
)

type EntryService struct {
	repo     repository.EntryRepository
	schedule *WorkScheduleService
	logger   *logrus.Logger
}

func NewEntryService(repo repository.EntryRepository, schedule *WorkScheduleService) *EntryService {
	return &EntryService{
		repo:     repo,
		schedule: schedule,
		logger:   logging.New(),
	}
}

// ParseActivities разбирает текст вида "Coding (3h); Review; Doku".
// Активность с припиской (Xh) получает указанное время, без приписки время не задано.
func (s *EntryService) ParseActivities(text string) []allocation.Activity {
	var out []allocation.Activity
	for _, segment := range strings.Split(text, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		parsed := report.ParseSegment(segment)
		if parsed.Text == "" {
			continue
		}

		activity := allocation.Activity{Description: parsed.Text}
		if parsed.Annotated {
			activity.Duration = allocation.Hours(parsed.Hours)
		}
		out = append(out, activity)
	}
	return out
}

// SaveEntry распределяет часы дня между активностями и заменяет запись за дату целиком.
// Отметка "проверено" у существующей записи сохраняется.
func (s *EntryService) SaveEntry(userID uint, date time.Time, activities []allocation.Activity) (*models.Entry, error) {
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}

	date = timecalc.Day(date)
	cfg, err := s.schedule.GetConfig(userID)
	if err != nil {
		return nil, err
	}

	day := cfg.ForWeekday(date.Weekday())
	if !day.Enabled {
		return nil, ErrDayDisabled
	}

	allocated, err := allocation.Allocate(day.Hours, activities)
	if err != nil {
		return nil, translateAllocationError(err)
	}

	existing, err := s.repo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}

	entry := &models.Entry{UserID: userID, Date: date}
	if existing != nil {
		entry.IsCompleted = existing.IsCompleted
	}

	rows := make([]models.Activity, len(allocated))
	for i, a := range allocated {
		rows[i] = models.Activity{Description: a.Description, Duration: a.Duration, Order: i}
	}

	if err := s.repo.ReplaceEntry(entry, rows); err != nil {
		return nil, fmt.Errorf("ошибка сохранения записи: %w", err)
	}

	if sum := allocation.Sum(allocated); sum > day.Hours {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"date":    timecalc.FormatDate(date),
			"hours":   sum,
			"planned": day.Hours,
		}).Warn("Entry exceeds planned hours")
	}

	return entry, nil
}

func translateAllocationError(err error) error {
	switch {
	case errors.Is(err, allocation.ErrGranularity):
		return fmt.Errorf("время активности должно быть кратно 0.5ч")
	case errors.Is(err, allocation.ErrNegativeDuration):
		return fmt.Errorf("время активности не может быть отрицательным")
	case errors.Is(err, allocation.ErrNegativeBudget):
		return fmt.Errorf("некорректные часы дня в графике")
	default:
		return err
	}
}

// GetEntry запись за день или ErrEntryNotFound
func (s *EntryService) GetEntry(userID uint, date time.Time) (*models.Entry, error) {
	entry, err := s.repo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}
	if entry == nil {
		return nil, repository.ErrEntryNotFound
	}
	return entry, nil
}

// GetMonthEntries записи за календарный месяц по возрастанию даты
func (s *EntryService) GetMonthEntries(userID uint, year, month int) ([]models.Entry, error) {
	from, to := timecalc.MonthRange(year, month)
	return s.repo.FindByUserAndRange(userID, from, to)
}

// SetCompleted отмечает запись проверенной
func (s *EntryService) SetCompleted(userID uint, date time.Time, completed bool) error {
	return s.repo.SetCompleted(userID, date, completed)
}

// SuggestSplit предлагает равную разбивку часов дня на n частей, ничего не сохраняя
func (s *EntryService) SuggestSplit(userID uint, date time.Time, n int) ([]float64, error) {
	if n <= 0 || n > 24 {
		return nil, fmt.Errorf("количество частей должно быть от 1 до 24")
	}

	cfg, err := s.schedule.GetConfig(userID)
	if err != nil {
		return nil, err
	}
	day := cfg.ForWeekday(date.Weekday())
	if !day.Enabled {
		return nil, ErrDayDisabled
	}

	return allocation.Even(day.Hours, n), nil
}

// FormatEntry форматирует запись дня
func (s *EntryService) FormatEntry(entry *models.Entry) string {
	var lines []string

	status := "📝"
	if entry.IsCompleted {
		status = "✅"
	}
	lines = append(lines, fmt.Sprintf("%s %s %s (KW %d)", status,
		report.DayNames[timecalc.WeekdayIndex(entry.Date)], timecalc.FormatDate(entry.Date), entry.Week))
	lines = append(lines, "")

	for i, a := range entry.Activities {
		lines = append(lines, fmt.Sprintf("%d. %s - %sч", i+1, a.Description, report.FormatHours(a.Duration)))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("⏱️ Итого: %sч", report.FormatHours(entry.TotalHours())))

	return strings.Join(lines, "\n")
}

// FormatMonth краткий список записей месяца
func (s *EntryService) FormatMonth(year, month int, entries []models.Entry) string {
	header := fmt.Sprintf("📅 %s %d", timecalc.GermanMonth(time.Month(month)), year)
	if len(entries) == 0 {
		return header + "\n\n📭 Записей нет"
	}

	var lines []string
	lines = append(lines, header)
	lines = append(lines, "")

	total := 0.0
	for _, e := range entries {
		status := "📝"
		if e.IsCompleted {
			status = "✅"
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s", status, timecalc.FormatDate(e.Date), report.FormatContent(e.Activities)))
		total += e.TotalHours()
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📊 Дней: %d, часов: %s", len(entries), report.FormatHours(total)))

	return strings.Join(lines, "\n")
}
