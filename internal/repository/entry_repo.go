package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"berichtsheft-bot/internal/logging"
	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/timecalc"
	"berichtsheft-bot/pkg/legacy"
)

var ErrEntryNotFound = errors.New("запись не найдена")

type EntryRepository interface {
	GetByUserAndDate(userID uint, date time.Time) (*models.Entry, error)
	FindByUserAndRange(userID uint, from, to time.Time) ([]models.Entry, error)
	ReplaceEntry(entry *models.Entry, activities []models.Activity) error
	SetCompleted(userID uint, date time.Time, completed bool) error
	DeleteByUserID(userID uint) error
	MigrateLegacyActivities() (int, error)
}

type GormEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEntryRepository(db *gorm.DB) (*GormEntryRepository, error) {
	logger := logging.New()

	if err := db.AutoMigrate(&models.Entry{}, &models.Activity{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate entries tables")
		return nil, err
	}

	return &GormEntryRepository{db: db, logger: logger}, nil
}

func orderedActivities(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// GetByUserAndDate запись за день или nil, если записи нет или в ней нет активностей
func (r *GormEntryRepository) GetByUserAndDate(userID uint, date time.Time) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.Preload("Activities", orderedActivities).
		Where("user_id = ? AND date = ?", userID, timecalc.Day(date)).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get entry")
		return nil, err
	}

	if !r.resolveActivities(&entry) {
		return nil, nil
	}
	return &entry, nil
}

// FindByUserAndRange записи за период [from, to] по возрастанию даты.
// Записи без активностей пропускаются: это след недописанного сохранения.
func (r *GormEntryRepository) FindByUserAndRange(userID uint, from, to time.Time) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.Preload("Activities", orderedActivities).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, timecalc.Day(from), timecalc.Day(to)).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		r.logger.WithError(err).Error("Failed to find entries")
		return nil, err
	}

	result := make([]models.Entry, 0, len(entries))
	for i := range entries {
		if r.resolveActivities(&entries[i]) {
			result = append(result, entries[i])
		}
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"from":    timecalc.FormatDate(from),
		"to":      timecalc.FormatDate(to),
		"count":   len(result),
	}).Debug("Entries loaded")

	return result, nil
}

// resolveActivities подставляет активности из старого JSON поля, если строк в activities нет.
// Возвращает false, если активностей нет совсем.
func (r *GormEntryRepository) resolveActivities(entry *models.Entry) bool {
	if entry.HasActivities() {
		return true
	}
	if entry.Activity == "" {
		return false
	}

	decoded, err := legacy.DecodeActivities(entry.Activity)
	if err != nil {
		r.logger.WithError(err).WithField("entry_id", entry.ID).Warn("Failed to decode legacy activities")
		return false
	}

	entry.Activities = toModelActivities(entry.ID, decoded)
	return entry.HasActivities()
}

func toModelActivities(entryID uint, decoded []legacy.Activity) []models.Activity {
	activities := make([]models.Activity, 0, len(decoded))
	for _, a := range decoded {
		activities = append(activities, models.Activity{
			EntryID:     entryID,
			Description: a.Description,
			Duration:    a.Duration,
			Order:       a.Order,
		})
	}
	return activities
}

// ReplaceEntry сохраняет запись за день и полностью заменяет ее активности.
// Все шаги выполняются в одной транзакции, порядок активностей 0..n-1.
func (r *GormEntryRepository) ReplaceEntry(entry *models.Entry, activities []models.Activity) error {
	entry.SetCalendarFields()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Entry
		err := tx.Where("user_id = ? AND date = ?", entry.UserID, entry.Date).First(&existing).Error
		switch {
		case err == nil:
			entry.ID = existing.ID
			entry.CreatedAt = existing.CreatedAt
			if err := tx.Where("entry_id = ?", existing.ID).Delete(&models.Activity{}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry.ID = 0
		default:
			return err
		}

		// старый JSON больше не нужен, активности живут в своей таблице
		entry.Activity = ""
		entry.Activities = nil
		if err := tx.Omit(clause.Associations).Save(entry).Error; err != nil {
			return err
		}

		if len(activities) == 0 {
			return nil
		}

		rows := make([]models.Activity, len(activities))
		for i, a := range activities {
			rows[i] = models.Activity{
				EntryID:     entry.ID,
				Description: a.Description,
				Duration:    a.Duration,
				Order:       i,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		entry.Activities = rows
		return nil
	})
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": entry.UserID,
			"date":    timecalc.FormatDate(entry.Date),
		}).Error("Failed to replace entry")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"entry_id":   entry.ID,
		"user_id":    entry.UserID,
		"date":       timecalc.FormatDate(entry.Date),
		"activities": len(entry.Activities),
	}).Info("Entry saved")
	return nil
}

// SetCompleted отмечает день как заполненный или снимает отметку
func (r *GormEntryRepository) SetCompleted(userID uint, date time.Time, completed bool) error {
	result := r.db.Model(&models.Entry{}).
		Where("user_id = ? AND date = ?", userID, timecalc.Day(date)).
		Update("is_completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteByUserID удаляет все записи пользователя вместе с активностями
func (r *GormEntryRepository) DeleteByUserID(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		entryIDs := tx.Model(&models.Entry{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("entry_id IN (?)", entryIDs).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Entry{}).Error
	})
}

// MigrateLegacyActivities переносит активности из старого JSON поля в таблицу activities.
// Записи с битым JSON остаются как есть и попадают в лог. Возвращает число перенесенных записей.
func (r *GormEntryRepository) MigrateLegacyActivities() (int, error) {
	var entries []models.Entry
	if err := r.db.Preload("Activities").Where("activity <> ''").Find(&entries).Error; err != nil {
		return 0, err
	}

	migrated := 0
	for i := range entries {
		entry := &entries[i]
		logger := r.logger.WithField("entry_id", entry.ID)

		var rows []models.Activity
		if len(entry.Activities) == 0 {
			decoded, err := legacy.DecodeActivities(entry.Activity)
			if err != nil {
				logger.WithError(err).Warn("Skipping entry with unreadable legacy activities")
				continue
			}
			rows = toModelActivities(entry.ID, decoded)
		}

		err := r.db.Transaction(func(tx *gorm.DB) error {
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.Entry{}).Where("id = ?", entry.ID).Update("activity", "").Error
		})
		if err != nil {
			logger.WithError(err).Error("Failed to migrate legacy activities")
			return migrated, err
		}
		if len(rows) > 0 {
			migrated++
		}
	}

	if migrated > 0 {
		r.logger.WithField("count", migrated).Info("Legacy activities migrated")
	}
	return migrated, nil
}
