package timecalc

import (
	"fmt"
	"math"
	"time"
)

// DateLayout формат дат в отчете и сообщениях бота
const DateLayout = "02.01.2006"

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Day возвращает календарный день t как полночь UTC.
// Берется год/месяц/день в локации самого t, время суток отбрасывается.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today возвращает сегодняшний календарный день
func Today() time.Time {
	return Day(time.Now())
}

// MondayOnOrBefore возвращает понедельник той же недели (для воскресенья - на 6 дней назад)
func MondayOnOrBefore(t time.Time) time.Time {
	day := Day(t)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// WeekdayIndex возвращает индекс дня недели начиная с понедельника (0..6)
func WeekdayIndex(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 6
	}
	return int(t.Weekday()) - 1
}

// DaysBetween количество полных календарных дней от from до to (может быть отрицательным)
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(Day(to).Sub(Day(from)).Hours() / 24))
}

// MonthRange возвращает первый и последний день месяца
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// ISOWeek номер недели по ISO 8601 (так же считает немецкая локаль)
func ISOWeek(t time.Time) int {
	_, week := Day(t).ISOWeek()
	return week
}

// FormatDate форматирует дату как ДД.ММ.ГГГГ
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatRange форматирует период "ДД.ММ.ГГГГ - ДД.ММ.ГГГГ"
func FormatRange(from, to time.Time) string {
	return fmt.Sprintf("%s - %s", FormatDate(from), FormatDate(to))
}

// GermanMonth название месяца по-немецки
func GermanMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return germanMonths[m-1]
}
