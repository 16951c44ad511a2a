package models

import (
	"time"

	"berichtsheft-bot/internal/timecalc"
)

// Entry запись в Berichtsheft за один день
type Entry struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_entries_user_date" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_entries_user_date" json:"date"`
	IsCompleted bool      `gorm:"not null" json:"is_completed"`
	Week        int       `gorm:"not null;index" json:"week"`
	Month       int       `gorm:"not null;index" json:"month"`
	Year        int       `gorm:"not null;index" json:"year"`

	// Старый формат: активности в JSON строке. Новые записи его не заполняют.
	Activity string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Activities []Activity `gorm:"foreignKey:EntryID" json:"activities"`
}

func (Entry) TableName() string {
	return "entries"
}

// Activity одна выполненная работа внутри дня
type Activity struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	EntryID     uint    `gorm:"not null;index" json:"entry_id"`
	Description string  `gorm:"not null" json:"description"`
	Duration    float64 `gorm:"not null" json:"duration"`
	Order       int     `gorm:"column:sort_order;not null" json:"order"`
}

func (Activity) TableName() string {
	return "activities"
}

// SetCalendarFields заполняет неделю, месяц и год по дате записи
func (e *Entry) SetCalendarFields() {
	e.Date = timecalc.Day(e.Date)
	e.Week = timecalc.ISOWeek(e.Date)
	e.Month = int(e.Date.Month())
	e.Year = e.Date.Year()
}

// TotalHours сумма часов по всем активностям
func (e *Entry) TotalHours() float64 {
	total := 0.0
	for _, a := range e.Activities {
		total += a.Duration
	}
	return total
}

// HasActivities есть ли у записи хотя бы одна активность
func (e *Entry) HasActivities() bool {
	return len(e.Activities) > 0
}

// IsValid проверяет валидность данных
func (e *Entry) IsValid() bool {
	if e.UserID == 0 || e.Date.IsZero() {
		return false
	}
	for _, a := range e.Activities {
		if a.Duration < 0 || a.Description == "" {
			return false
		}
	}
	return true
}
