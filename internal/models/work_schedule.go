package models

import (
	"math"
	"time"
)

// MaxDayHours верхняя граница часов в день
const MaxDayHours = 24

// DayConfig настройки одного дня недели
type DayConfig struct {
	Enabled bool    `gorm:"not null" json:"enabled" yaml:"enabled"`
	Hours   float64 `gorm:"not null" json:"hours" yaml:"hours"`
}

// WeekdayConfig рабочее время по дням недели
type WeekdayConfig struct {
	Monday    DayConfig `gorm:"embedded;embeddedPrefix:monday_" json:"monday" yaml:"monday"`
	Tuesday   DayConfig `gorm:"embedded;embeddedPrefix:tuesday_" json:"tuesday" yaml:"tuesday"`
	Wednesday DayConfig `gorm:"embedded;embeddedPrefix:wednesday_" json:"wednesday" yaml:"wednesday"`
	Thursday  DayConfig `gorm:"embedded;embeddedPrefix:thursday_" json:"thursday" yaml:"thursday"`
	Friday    DayConfig `gorm:"embedded;embeddedPrefix:friday_" json:"friday" yaml:"friday"`
	Saturday  DayConfig `gorm:"embedded;embeddedPrefix:saturday_" json:"saturday" yaml:"saturday"`
	Sunday    DayConfig `gorm:"embedded;embeddedPrefix:sunday_" json:"sunday" yaml:"sunday"`
}

// DefaultWeekdayConfig понедельник-пятница по 8 часов
func DefaultWeekdayConfig() WeekdayConfig {
	workday := DayConfig{Enabled: true, Hours: 8}
	weekend := DayConfig{Enabled: false, Hours: 0}
	return WeekdayConfig{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  weekend,
		Sunday:    weekend,
	}
}

func (c *WeekdayConfig) days() [7]*DayConfig {
	return [7]*DayConfig{&c.Monday, &c.Tuesday, &c.Wednesday, &c.Thursday, &c.Friday, &c.Saturday, &c.Sunday}
}

// Day возвращает настройки по индексу с понедельника (0 = понедельник, 6 = воскресенье)
func (c WeekdayConfig) Day(index int) DayConfig {
	if index < 0 || index > 6 {
		return DayConfig{}
	}
	return *c.days()[index]
}

// ForWeekday настройки для time.Weekday
func (c WeekdayConfig) ForWeekday(wd time.Weekday) DayConfig {
	return c.Day(mondayIndex(wd))
}

// SetWeekday меняет настройки одного дня
func (c *WeekdayConfig) SetWeekday(wd time.Weekday, day DayConfig) {
	*c.days()[mondayIndex(wd)] = day
}

// WeeklyHours сумма часов по включенным дням
func (c WeekdayConfig) WeeklyHours() float64 {
	total := 0.0
	for _, d := range c.days() {
		if d.Enabled {
			total += d.Hours
		}
	}
	return total
}

// IsValid часы от 0 до 24 с шагом 0.5
func (c WeekdayConfig) IsValid() bool {
	for _, d := range c.days() {
		if !d.IsValid() {
			return false
		}
	}
	return true
}

func (d DayConfig) IsValid() bool {
	if math.IsNaN(d.Hours) || d.Hours < 0 || d.Hours > MaxDayHours {
		return false
	}
	return math.Mod(d.Hours*2, 1) == 0
}

func mondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// WorkSchedule хранимая конфигурация рабочего времени пользователя
type WorkSchedule struct {
	ID            uint `gorm:"primarykey" json:"id"`
	UserID        uint `gorm:"uniqueIndex;not null" json:"user_id"`
	WeekdayConfig `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}

// IsValid проверяет валидность данных
func (ws *WorkSchedule) IsValid() bool {
	return ws.UserID != 0 && ws.WeekdayConfig.IsValid()
}
