package report

import (
	"strconv"
	"time"

	"berichtsheft-bot/internal/models"
)

// DayNames подписи строк таблицы, с понедельника
var DayNames = [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// UserInfo данные ученика для шапки страницы
type UserInfo struct {
	Name         string
	Company      string
	Department   string
	Profession   string
	TrainingYear int
}

// Input все, что нужно для отрисовки отчета
type Input struct {
	Month     string // "Oktober"
	Year      string // "2025"
	DateRange string // "06.10.2025 - 31.10.2025"
	Weeks     []WeekRecord
	User      UserInfo
	Config    models.WeekdayConfig
}

// ActivityLine одна строка активности внутри дня
type ActivityLine struct {
	Text  string
	Hours float64 // 0 - колонка часов пустая
}

// DayRow строка таблицы за один день
type DayRow struct {
	Name  string
	Date  time.Time
	Lines []ActivityLine
	Total float64
}

// PageLayout раскладка одной страницы (одной недели)
type PageLayout struct {
	Number       int
	Name         string
	Company      string
	Department   string
	Profession   string
	TrainingYear string
	WeekFrom     time.Time
	WeekTo       time.Time
	Rows         []DayRow
	Total        float64
}

// VisibleDays сколько строк дней показывать: Пн-Пт, суббота если включена
// суббота или воскресенье, воскресенье если оно включено.
func VisibleDays(cfg models.WeekdayConfig) int {
	switch {
	case cfg.Sunday.Enabled:
		return 7
	case cfg.Saturday.Enabled:
		return 6
	default:
		return 5
	}
}

// DayTotal часы дня для колонки "Gesamtstunden".
// Если хоть у одной активности есть приписка (Xh), берется их сумма.
// Если текст есть, а приписок нет, берутся часы из настроек дня.
func DayTotal(content string, configuredHours float64) float64 {
	activities := ParseContent(content)
	if len(activities) == 0 {
		return 0
	}

	annotated := false
	sum := 0.0
	for _, a := range activities {
		if a.Annotated {
			annotated = true
			sum += a.Hours
		}
	}
	if annotated {
		return sum
	}
	return configuredHours
}

// LayoutWeek раскладывает неделю в страницу
func LayoutWeek(week WeekRecord, in Input) PageLayout {
	visible := VisibleDays(in.Config)
	page := PageLayout{
		Number:       week.Number,
		Name:         in.User.Name,
		Company:      in.User.Company,
		Department:   in.User.Department,
		Profession:   in.User.Profession,
		TrainingYear: strconv.Itoa(in.User.TrainingYear),
		WeekFrom:     week.StartDate,
		WeekTo:       week.StartDate.AddDate(0, 0, visible-1),
		Rows:         make([]DayRow, 0, visible),
	}

	for i := 0; i < visible; i++ {
		content := week.Activities[i]
		row := DayRow{
			Name:  DayNames[i],
			Date:  week.StartDate.AddDate(0, 0, i),
			Total: DayTotal(content, in.Config.Day(i).Hours),
		}
		for _, a := range ParseContent(content) {
			row.Lines = append(row.Lines, ActivityLine{Text: a.Text, Hours: a.Hours})
		}
		page.Rows = append(page.Rows, row)
		page.Total += row.Total
	}
	return page
}
