package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/timecalc"
)

type VacationPeriodRepository interface {
	Create(period *models.VacationPeriod) error
	GetByID(id uint) (*models.VacationPeriod, error)
	GetByUserID(userID uint) ([]models.VacationPeriod, error)
	GetInRange(userID uint, from, to time.Time) ([]models.VacationPeriod, error)
	Delete(id uint) error
	DeleteByUserID(userID uint) error
}

type GormVacationPeriodRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormVacationPeriodRepository(db *gorm.DB) (*GormVacationPeriodRepository, error) {
	logger := logging.New()

	if err := db.AutoMigrate(&models.VacationPeriod{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate vacation_periods table")
		return nil, err
	}

	return &GormVacationPeriodRepository{db: db, logger: logger}, nil
}

func (r *GormVacationPeriodRepository) Create(period *models.VacationPeriod) error {
	period.StartDate = timecalc.Day(period.StartDate)
	period.EndDate = timecalc.Day(period.EndDate)

	if err := r.db.Create(period).Error; err != nil {
		r.logger.WithError(err).WithField("user_id", period.UserID).Error("Failed to create vacation period")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":      period.ID,
		"user_id": period.UserID,
		"start":   timecalc.FormatDate(period.StartDate),
		"end":     timecalc.FormatDate(period.EndDate),
	}).Info("Vacation period created")
	return nil
}

func (r *GormVacationPeriodRepository) GetByID(id uint) (*models.VacationPeriod, error) {
	var period models.VacationPeriod
	err := r.db.First(&period, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByUserID все отпуска пользователя по возрастанию даты начала
func (r *GormVacationPeriodRepository) GetByUserID(userID uint) ([]models.VacationPeriod, error) {
	var periods []models.VacationPeriod
	err := r.db.Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

// GetInRange отпуска, пересекающиеся с периодом [from, to]
func (r *GormVacationPeriodRepository) GetInRange(userID uint, from, to time.Time) ([]models.VacationPeriod, error) {
	var periods []models.VacationPeriod
	err := r.db.Where("user_id = ? AND start_date <= ? AND end_date >= ?",
		userID, timecalc.Day(to), timecalc.Day(from)).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *GormVacationPeriodRepository) Delete(id uint) error {
	result := r.db.Delete(&models.VacationPeriod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("отпуск не найден")
	}

	r.logger.WithField("id", id).Info("Vacation period deleted")
	return nil
}

func (r *GormVacationPeriodRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.VacationPeriod{}).Error
}
