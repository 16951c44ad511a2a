package models

// MonthlyStat план и факт по часам за месяц.
// Не хранится в БД, считается при каждом запросе.
type MonthlyStat struct {
	UserID uint `json:"user_id"`
	Year   int  `json:"year"`
	Month  int  `json:"month"`

	// Плановые показатели
	PlannedDays  int     `json:"planned_days"`
	PlannedHours float64 `json:"planned_hours"`
	VacationDays int     `json:"vacation_days"`

	// Фактические показатели
	LoggedDays    int     `json:"logged_days"`
	LoggedHours   float64 `json:"logged_hours"`
	CompletedDays int     `json:"completed_days"`
	OvertimeHours float64 `json:"overtime_hours"`
	DeficitHours  float64 `json:"deficit_hours"`
}

// CalculateStats вычисляет переработку и недобор
func (ms *MonthlyStat) CalculateStats() {
	diff := ms.LoggedHours - ms.PlannedHours
	if diff > 0 {
		ms.OvertimeHours = diff
		ms.DeficitHours = 0
	} else {
		ms.OvertimeHours = 0
		ms.DeficitHours = -diff
	}
}

// IsValid проверяет валидность данных
func (ms *MonthlyStat) IsValid() bool {
	if ms.Month < 1 || ms.Month > 12 {
		return false
	}
	if ms.PlannedDays < 0 || ms.PlannedHours < 0 {
		return false
	}
	if ms.LoggedDays < 0 || ms.LoggedHours < 0 {
		return false
	}
	return true
}
