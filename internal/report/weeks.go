// Package report собирает недели из записей и рисует Ausbildungsnachweis в PDF.
//
// BuildWeeks и Layout чистые функции без ввода-вывода. Render рисует уже
// посчитанную раскладку через fpdf.
package report

import (
	"fmt"
	"slices"
	"time"

	"berichtsheft-bot/internal/models"
	"berichtsheft-bot/internal/timecalc"
)

// VacationMarker текст дня, попавшего в отпуск
const VacationMarker = "Ferien (0h)"

// DayContent содержимое одного дня, как оно попадает в отчет
type DayContent struct {
	Date    time.Time
	Content string
}

// WeekRecord одна неделя отчета, готовая к отрисовке
type WeekRecord struct {
	WeekKey    string
	Number     int
	Activities [7]string // с понедельника
	TotalHours float64
	StartDate  time.Time
}

// IsVacationDay попадает ли календарный день в один из отпусков.
// Время суток не учитывается.
func IsVacationDay(date time.Time, vacations []models.VacationPeriod) bool {
	for i := range vacations {
		if vacations[i].Contains(date) {
			return true
		}
	}
	return false
}

// BuildWeeks группирует дни по неделям, считая недели от понедельника reference.
//
// Дни раньше этого понедельника отбрасываются. Неделя появляется в отчете
// только если в нее попал хотя бы один день.
func BuildWeeks(days []DayContent, vacations []models.VacationPeriod, cfg models.WeekdayConfig, reference time.Time) []WeekRecord {
	firstMonday := timecalc.MondayOnOrBefore(reference)

	buckets := make(map[int]*[7]string)
	for _, d := range days {
		date := timecalc.Day(d.Date)
		if date.Before(firstMonday) {
			continue
		}

		number := timecalc.DaysBetween(firstMonday, date)/7 + 1
		slots, ok := buckets[number]
		if !ok {
			slots = new([7]string)
			buckets[number] = slots
		}
		slots[timecalc.WeekdayIndex(date)] = d.Content
	}

	numbers := make([]int, 0, len(buckets))
	for n := range buckets {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	records := make([]WeekRecord, 0, len(numbers))
	for _, n := range numbers {
		monday := firstMonday.AddDate(0, 0, (n-1)*7)
		records = append(records, buildRecord(n, monday, buckets[n], vacations, cfg))
	}
	return records
}

func buildRecord(number int, monday time.Time, slots *[7]string, vacations []models.VacationPeriod, cfg models.WeekdayConfig) WeekRecord {
	record := WeekRecord{
		WeekKey:   WeekKey(monday, number),
		Number:    number,
		StartDate: monday,
	}

	for i := 0; i < 7; i++ {
		day := cfg.Day(i)
		switch {
		case IsVacationDay(monday.AddDate(0, 0, i), vacations):
			record.Activities[i] = VacationMarker
		case !day.Enabled:
			record.Activities[i] = ""
		default:
			record.Activities[i] = slots[i]
			record.TotalHours += day.Hours
		}
	}
	return record
}

// WeekKey ключ недели вида 2025-10-W3 (год и месяц понедельника)
func WeekKey(monday time.Time, number int) string {
	return fmt.Sprintf("%04d-%02d-W%d", monday.Year(), int(monday.Month()), number)
}
