package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"berichtsheft-bot/internal/timecalc"
)

var dateFormats = []string{
	timecalc.DateLayout,
	"02-01-2006",
	"2006-01-02",
	"02.01",
	"02-01",
}

var relativeDays = map[string]int{
	"today":     0,
	"heute":     0,
	"сегодня":   0,
	"yesterday": -1,
	"gestern":   -1,
	"вчера":     -1,
}

// parseDate парсит дату из строки. Без года берется год из now.
func parseDate(dateStr string, now time.Time) (time.Time, error) {
	dateStr = strings.ToLower(strings.TrimSpace(dateStr))
	if offset, ok := relativeDays[dateStr]; ok {
		return timecalc.Day(now).AddDate(0, 0, offset), nil
	}

	for _, format := range dateFormats {
		t, err := time.Parse(format, dateStr)
		if err != nil {
			continue
		}
		if !strings.Contains(format, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return timecalc.Day(t), nil
	}

	return time.Time{}, fmt.Errorf("неверный формат даты. Используйте ДД.ММ.ГГГГ или ДД.ММ")
}

// splitDateArg отделяет необязательную дату в начале аргументов.
// Если первое слово не дата, возвращается сегодняшний день и весь текст.
func splitDateArg(args string, now time.Time) (time.Time, string) {
	args = strings.TrimSpace(args)
	first, rest, _ := strings.Cut(args, " ")
	if date, err := parseDate(first, now); err == nil && first != "" {
		return date, strings.TrimSpace(rest)
	}
	return timecalc.Day(now), args
}

var weekdayNames = map[string]time.Weekday{
	"mo": time.Monday, "montag": time.Monday, "monday": time.Monday, "mon": time.Monday, "пн": time.Monday, "понедельник": time.Monday,
	"di": time.Tuesday, "dienstag": time.Tuesday, "tuesday": time.Tuesday, "tue": time.Tuesday, "вт": time.Tuesday, "вторник": time.Tuesday,
	"mi": time.Wednesday, "mittwoch": time.Wednesday, "wednesday": time.Wednesday, "wed": time.Wednesday, "ср": time.Wednesday, "среда": time.Wednesday,
	"do": time.Thursday, "donnerstag": time.Thursday, "thursday": time.Thursday, "thu": time.Thursday, "чт": time.Thursday, "четверг": time.Thursday,
	"fr": time.Friday, "freitag": time.Friday, "friday": time.Friday, "fri": time.Friday, "пт": time.Friday, "пятница": time.Friday,
	"sa": time.Saturday, "samstag": time.Saturday, "saturday": time.Saturday, "sat": time.Saturday, "сб": time.Saturday, "суббота": time.Saturday,
	"so": time.Sunday, "sonntag": time.Sunday, "sunday": time.Sunday, "sun": time.Sunday, "вс": time.Sunday, "воскресенье": time.Sunday,
}

func parseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("неизвестный день недели %q", s)
	}
	return wd, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "an", "вкл", "да", "1":
		return true, nil
	case "off", "aus", "выкл", "нет", "0":
		return false, nil
	}
	return false, fmt.Errorf("ожидается on или off, получено %q", s)
}

// parseHours понимает и точку, и запятую: 7.5 и 7,5
func parseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("неверное количество часов %q", s)
	}
	return h, nil
}

// parseMonthArgs разбирает "[месяц]" или "[год месяц]", пустая строка - текущий месяц
func parseMonthArgs(args string, now time.Time) (int, int, error) {
	parts := strings.Fields(args)
	switch len(parts) {
	case 0:
		return now.Year(), int(now.Month()), nil
	case 1:
		month, err := strconv.Atoi(parts[0])
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("неверный месяц. Используйте число от 1 до 12")
		}
		return now.Year(), month, nil
	case 2:
		year, err := strconv.Atoi(parts[0])
		if err != nil || year < 2000 || year > 2100 {
			return 0, 0, fmt.Errorf("неверный год. Используйте год между 2000 и 2100")
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("неверный месяц. Используйте число от 1 до 12")
		}
		return year, month, nil
	}
	return 0, 0, fmt.Errorf("неверный формат. Используйте: [год месяц] или [месяц]")
}
