package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/repository"
	"berichtsheft-bot/internal/timecalc"
)

type VacationService struct {
	repo   repository.VacationPeriodRepository
	logger *logrus.Logger
}

func NewVacationService(repo repository.VacationPeriodRepository) *VacationService {
	return &VacationService{
		repo:   repo,
		logger: logging.New(),
	}
}

// AddVacation добавляет отпуск. Пересечения с другими отпусками разрешены,
// в отчете день просто остается отпускным.
func (s *VacationService) AddVacation(userID uint, startDate, endDate time.Time, description string) (*models.VacationPeriod, error) {
	period := &models.VacationPeriod{
		UserID:    userID,
		StartDate: timecalc.Day(startDate),
		EndDate:   timecalc.Day(endDate),
	}
	if description = strings.TrimSpace(description); description != "" {
		period.Description = &description
	}

	if period.EndDate.Before(period.StartDate) {
		return nil, ErrVacationRange
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("некорректные данные отпуска")
	}

	if err := s.repo.Create(period); err != nil {
		return nil, fmt.Errorf("ошибка сохранения отпуска: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"id":      period.ID,
		"days":    period.Days(),
	}).Info("Vacation added")

	return period, nil
}

// GetUserVacations отпуска пользователя по возрастанию даты начала
func (s *VacationService) GetUserVacations(userID uint) ([]models.VacationPeriod, error) {
	return s.repo.GetByUserID(userID)
}

// DeleteVacation удаляет отпуск, если он принадлежит пользователю
func (s *VacationService) DeleteVacation(userID, periodID uint) error {
	period, err := s.repo.GetByID(periodID)
	if err != nil {
		return fmt.Errorf("ошибка поиска отпуска: %w", err)
	}
	if period == nil || period.UserID != userID {
		s.logger.WithFields(logrus.Fields{
			"user_id":   userID,
			"period_id": periodID,
		}).Warn("Vacation delete rejected")
		return ErrNotOwner
	}

	return s.repo.Delete(periodID)
}

// FormatVacations форматирует список отпусков
func (s *VacationService) FormatVacations(periods []models.VacationPeriod) string {
	if len(periods) == 0 {
		return "📭 Отпусков пока нет"
	}

	var lines []string
	lines = append(lines, "🏖️ Ваши отпуска:")
	lines = append(lines, "")

	for _, p := range periods {
		line := fmt.Sprintf("#%d  %s (%d дн.)", p.ID, timecalc.FormatRange(p.StartDate, p.EndDate), p.Days())
		if d := p.DescriptionOrEmpty(); d != "" {
			line += " - " + d
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, "Удалить: /delvacation <id>")

	return strings.Join(lines, "\n")
}
