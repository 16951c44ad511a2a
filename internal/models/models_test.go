package models

import (
	"testing"
	"time"
)

func TestWeekdayConfigDayIndexing(t *testing.T) {
	cfg := DefaultWeekdayConfig()
	cfg.SetWeekday(time.Sunday, DayConfig{Enabled: true, Hours: 4.5})

	if got := cfg.Day(6); !got.Enabled || got.Hours != 4.5 {
		t.Errorf("Day(6) = %+v, want sunday config", got)
	}
	if got := cfg.ForWeekday(time.Monday); !got.Enabled || got.Hours != 8 {
		t.Errorf("ForWeekday(Monday) = %+v", got)
	}
	if got := cfg.Day(7); got != (DayConfig{}) {
		t.Errorf("Day(7) = %+v, want zero value", got)
	}
	if got := cfg.WeeklyHours(); got != 44.5 {
		t.Errorf("WeeklyHours = %v, want 44.5", got)
	}
}

func TestDayConfigIsValid(t *testing.T) {
	tests := []struct {
		day  DayConfig
		want bool
	}{
		{DayConfig{Enabled: true, Hours: 8}, true},
		{DayConfig{Enabled: true, Hours: 7.5}, true},
		{DayConfig{Enabled: false, Hours: 0}, true},
		{DayConfig{Enabled: true, Hours: 7.25}, false},
		{DayConfig{Enabled: true, Hours: -1}, false},
		{DayConfig{Enabled: true, Hours: 25}, false},
	}
	for _, tt := range tests {
		if got := tt.day.IsValid(); got != tt.want {
			t.Errorf("%+v.IsValid() = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestVacationPeriodContainsIgnoresTimeOfDay(t *testing.T) {
	v := VacationPeriod{
		UserID:    1,
		StartDate: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
	}

	inside := []time.Time{
		time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 17, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	for _, d := range inside {
		if !v.Contains(d) {
			t.Errorf("Contains(%v) = false, want true", d)
		}
	}
	if v.Contains(time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)) {
		t.Error("Contains(day after end) = true")
	}
	if v.Contains(time.Date(2025, 10, 12, 23, 59, 0, 0, time.UTC)) {
		t.Error("Contains(day before start) = true")
	}
	if v.Days() != 5 {
		t.Errorf("Days = %d, want 5", v.Days())
	}
}

func TestVacationPeriodIsValid(t *testing.T) {
	v := VacationPeriod{
		UserID:    1,
		StartDate: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
	}
	if v.IsValid() {
		t.Error("IsValid() = true for start after end")
	}
	v.EndDate = v.StartDate
	if !v.IsValid() {
		t.Error("IsValid() = false for single-day period")
	}
}

func TestEntrySetCalendarFields(t *testing.T) {
	e := Entry{UserID: 1, Date: time.Date(2025, 10, 8, 15, 0, 0, 0, time.UTC)}
	e.SetCalendarFields()

	if e.Week != 41 || e.Month != 10 || e.Year != 2025 {
		t.Errorf("calendar fields = week %d month %d year %d", e.Week, e.Month, e.Year)
	}
	if e.Date.Hour() != 0 {
		t.Errorf("Date not normalised: %v", e.Date)
	}
}

func TestEntryHasActivities(t *testing.T) {
	var e Entry
	if e.HasActivities() {
		t.Error("empty entry reports activities")
	}
	e.Activities = []Activity{{Description: "Coding", Duration: 8}}
	if !e.HasActivities() {
		t.Error("entry with one activity reports none")
	}
}

func TestMonthlyStatCalculateStats(t *testing.T) {
	ms := MonthlyStat{Month: 10, PlannedHours: 160, LoggedHours: 150}
	ms.CalculateStats()
	if ms.DeficitHours != 10 || ms.OvertimeHours != 0 {
		t.Errorf("deficit = %v overtime = %v", ms.DeficitHours, ms.OvertimeHours)
	}

	ms.LoggedHours = 172.5
	ms.CalculateStats()
	if ms.OvertimeHours != 12.5 || ms.DeficitHours != 0 {
		t.Errorf("deficit = %v overtime = %v", ms.DeficitHours, ms.OvertimeHours)
	}
}

func TestUserTrainingYear(t *testing.T) {
	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	u := User{FirstName: "Max", LastName: "Muster", TrainingStartDate: &start}

	if got := u.TrainingYear(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)); got != 2 {
		t.Errorf("TrainingYear = %d, want 2", got)
	}
	if u.FullName() != "Max Muster" {
		t.Errorf("FullName = %q", u.FullName())
	}
	if u.DepartmentOrDefault() != DefaultDepartment {
		t.Errorf("DepartmentOrDefault = %q", u.DepartmentOrDefault())
	}
}
