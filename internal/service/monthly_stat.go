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
	"berichtsheft-bot/internal/timecalc"
)

type MonthlyStatService struct {
	entryRepo    repository.EntryRepository
	vacationRepo repository.VacationPeriodRepository
	schedule     *WorkScheduleService
	logger       *logrus.Logger
}

func NewMonthlyStatService(
	entryRepo repository.EntryRepository,
	vacationRepo repository.VacationPeriodRepository,
	schedule *WorkScheduleService,
) *MonthlyStatService {
	return &MonthlyStatService{
		entryRepo:    entryRepo,
		vacationRepo: vacationRepo,
		schedule:     schedule,
		logger:       logging.New(),
	}
}

// GetMonthStat считает план и факт за месяц. Ничего не кэширует.
func (s *MonthlyStatService) GetMonthStat(userID uint, year, month int) (*models.MonthlyStat, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("месяц должен быть от 1 до 12")
	}

	cfg, err := s.schedule.GetConfig(userID)
	if err != nil {
		return nil, err
	}

	from, to := timecalc.MonthRange(year, month)
	vacations, err := s.vacationRepo.GetInRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отпусков: %w", err)
	}

	stat := &models.MonthlyStat{UserID: userID, Year: year, Month: month}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := cfg.ForWeekday(d.Weekday())
		if !day.Enabled {
			continue
		}
		if report.IsVacationDay(d, vacations) {
			stat.VacationDays++
			continue
		}
		stat.PlannedDays++
		stat.PlannedHours += day.Hours
	}

	entries, err := s.entryRepo.FindByUserAndRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей: %w", err)
	}
	for _, e := range entries {
		stat.LoggedDays++
		stat.LoggedHours += e.TotalHours()
		if e.IsCompleted {
			stat.CompletedDays++
		}
	}

	stat.CalculateStats()

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"year":    year,
		"month":   month,
		"planned": stat.PlannedHours,
		"logged":  stat.LoggedHours,
	}).Debug("Monthly stat calculated")

	return stat, nil
}

// FormatStat форматирует статистику за месяц
func (s *MonthlyStatService) FormatStat(stat *models.MonthlyStat) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("📊 Статистика за %s %d", timecalc.GermanMonth(time.Month(stat.Month)), stat.Year))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("📅 Рабочих дней по графику: %d (%sч)", stat.PlannedDays, report.FormatHours(stat.PlannedHours)))
	if stat.VacationDays > 0 {
		lines = append(lines, fmt.Sprintf("🏖️ Дней отпуска: %d", stat.VacationDays))
	}
	lines = append(lines, fmt.Sprintf("📝 Заполнено дней: %d (%sч)", stat.LoggedDays, report.FormatHours(stat.LoggedHours)))
	lines = append(lines, fmt.Sprintf("✅ Проверено дней: %d", stat.CompletedDays))

	switch {
	case stat.OvertimeHours > 0:
		lines = append(lines, fmt.Sprintf("⏫ Переработка: %sч", report.FormatHours(stat.OvertimeHours)))
	case stat.DeficitHours > 0:
		lines = append(lines, fmt.Sprintf("⏬ Недобор: %sч", report.FormatHours(stat.DeficitHours)))
	default:
		lines = append(lines, "👌 План выполнен ровно")
	}

	return strings.Join(lines, "\n")
}
