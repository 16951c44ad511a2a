package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
)

type WorkScheduleRepository interface {
	GetByUserID(userID uint) (*models.WorkSchedule, error)
	Save(schedule *models.WorkSchedule) error
	DeleteByUserID(userID uint) error
}

type GormWorkScheduleRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkScheduleRepository(db *gorm.DB) (*GormWorkScheduleRepository, error) {
	logger := logging.New()

	// Автомиграция
	if err := db.AutoMigrate(&models.WorkSchedule{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_schedules table")
		return nil, err
	}

	logger.Debug("Work schedule repository initialized")

	return &GormWorkScheduleRepository{
		db:     db,
		logger: logger,
	}, nil
}

// GetByUserID возвращает график пользователя или nil, если он еще не сохранен
func (r *GormWorkScheduleRepository) GetByUserID(userID uint) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	result := r.db.Where("user_id = ?", userID).First(&schedule)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("user_id", userID).Debug("Work schedule not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work schedule by user")
		return nil, result.Error
	}

	return &schedule, nil
}

// Save создает график или обновляет существующий график пользователя
func (r *GormWorkScheduleRepository) Save(schedule *models.WorkSchedule) error {
	if !schedule.IsValid() {
		r.logger.WithField("user_id", schedule.UserID).Warn("Invalid work schedule data")
		return errors.New("некорректные данные графика")
	}

	existing, err := r.GetByUserID(schedule.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
	}

	// Save пишет все колонки, в том числе выключенные дни с нулями
	result := r.db.Save(schedule)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save work schedule")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":           schedule.ID,
		"user_id":      schedule.UserID,
		"weekly_hours": schedule.WeeklyHours(),
	}).Info("Work schedule saved")

	return nil
}

func (r *GormWorkScheduleRepository) DeleteByUserID(userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.WorkSchedule{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete work schedule")
		return result.Error
	}

	r.logger.WithField("user_id", userID).Debug("Work schedule deleted")
	return nil
}
