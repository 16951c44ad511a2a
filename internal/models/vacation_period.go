package models

import (
	"time"

	"berichtsheft-bot/internal/timecalc"
)

type VacationPeriod struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VacationPeriod) TableName() string {
	return "vacation_periods"
}

// Contains входит ли календарный день date в период (обе границы включительно)
func (v *VacationPeriod) Contains(date time.Time) bool {
	day := timecalc.Day(date)
	return !day.Before(timecalc.Day(v.StartDate)) && !day.After(timecalc.Day(v.EndDate))
}

// Days количество календарных дней в периоде
func (v *VacationPeriod) Days() int {
	return timecalc.DaysBetween(v.StartDate, v.EndDate) + 1
}

// DescriptionOrEmpty описание или пустая строка
func (v *VacationPeriod) DescriptionOrEmpty() string {
	if v.Description == nil {
		return ""
	}
	return *v.Description
}

// IsValid проверяет валидность данных
func (v *VacationPeriod) IsValid() bool {
	if v.UserID == 0 {
		return false
	}
	if v.StartDate.IsZero() || v.EndDate.IsZero() {
		return false
	}
	return !timecalc.Day(v.EndDate).Before(timecalc.Day(v.StartDate))
}
