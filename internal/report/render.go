package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"berichtsheft-bot/internal/timecalc"
)

// ErrNoWeeks в отчете нет ни одной недели
var ErrNoWeeks = errors.New("report: no weeks to render")

// Размеры страницы в мм
const (
	marginLeft   = 20.0
	marginRight  = 190.0
	tableWidth   = marginRight - marginLeft
	tableTop     = 50.0
	headerHeight = 15.0
	rowHeight    = 20.0
	// при семи строках обычная высота не помещает подписи на A4
	compactRowHeight = 16.0
	totalRowHeight   = 12.0
	lineSpacing      = 4.0

	colDay        = 25.0
	colHours      = 20.0
	colTotal      = 25.0
	colActivities = tableWidth - colDay - colHours - colTotal
)

// Render рисует по одной странице A4 на каждую неделю и пишет PDF в w
func Render(w io.Writer, in Input) error {
	if len(in.Weeks) == 0 {
		return ErrNoWeeks
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(fmt.Sprintf("Berichtsheft %s %s", in.Month, in.Year), true)
	pdf.SetSubject(in.DateRange, true)
	pdf.SetAuthor(in.User.Name, true)
	pdf.SetCreator("berichtsheft-bot", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, week := range in.Weeks {
		pdf.AddPage()
		drawPage(pdf, tr, LayoutWeek(week, in))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}
	return nil
}

func drawPage(pdf *fpdf.Fpdf, tr func(string) string, page PageLayout) {
	// шапка
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(marginLeft, 25, tr("Ausbildungsnachweis Nr. "))
	pdf.SetFontSize(14)
	pdf.Text(120, 25, fmt.Sprint(page.Number))
	pdf.SetFontSize(12)
	textRight(pdf, marginRight, 25, tr(page.Name))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 35, tr(fmt.Sprintf("Woche vom %s bis %s",
		timecalc.FormatDate(page.WeekFrom), timecalc.FormatDate(page.WeekTo))))
	textRight(pdf, marginRight, 35, tr("Ausbildungsjahr: "+page.TrainingYear))

	pdf.SetFontSize(9)
	pdf.Text(marginLeft, 41, tr(fmt.Sprintf("%s, Abteilung %s", page.Company, page.Department)))
	textRight(pdf, marginRight, 41, tr("Ausbildungsberuf: "+page.Profession))

	drawTableHeader(pdf, tr)

	height := rowHeight
	if len(page.Rows) > 6 {
		height = compactRowHeight
	}

	y := tableTop + headerHeight
	for _, row := range page.Rows {
		drawDayRow(pdf, tr, row, y, height)
		y += height
	}

	// итог недели
	pdf.SetFont("Helvetica", "B", 9)
	x := marginLeft + colDay + colActivities
	pdf.Rect(x, y, colHours, totalRowHeight, "D")
	pdf.Rect(x+colHours, y, colTotal, totalRowHeight, "D")
	pdf.Text(x+2, y+8, "Gesamt:")
	textCenter(pdf, x+colHours+12, y+8, FormatHours(page.Total))

	drawRemarks(pdf, tr, y+20)
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(marginLeft, tableTop, tableWidth, headerHeight, "F")

	x := marginLeft
	for _, width := range []float64{colDay, colActivities, colHours, colTotal} {
		pdf.Rect(x, tableTop, width, headerHeight, "D")
		x += width
	}

	pdf.Text(marginLeft+2, tableTop+10, "Tag")
	pdf.SetFontSize(9)
	pdf.Text(marginLeft+colDay+2, tableTop+10, tr("Ausgeführte Arbeiten, Unterricht, Unterweisungen, etc."))
	textCenter(pdf, marginLeft+colDay+colActivities+colHours/2, tableTop+10, "Stunden")
	pdf.Text(marginRight-colTotal+2, tableTop+6, "Gesamt-")
	pdf.Text(marginRight-colTotal+2, tableTop+11, "stunden")
}

func drawDayRow(pdf *fpdf.Fpdf, tr func(string) string, row DayRow, y, height float64) {
	x := marginLeft

	pdf.SetFont("Helvetica", "", 9)
	pdf.Rect(x, y, colDay, height, "D")
	pdf.Text(x+2, y+7, row.Name)
	pdf.SetFontSize(8)
	pdf.Text(x+2, y+13, timecalc.FormatDate(row.Date))
	pdf.SetFontSize(9)

	x += colDay
	pdf.Rect(x, y, colActivities, height, "D")
	hoursX := x + colActivities
	pdf.Rect(hoursX, y, colHours, height, "D")

	// строки, не влезшие в фиксированную высоту, не рисуются
	textY := y + 6
	for _, line := range row.Lines {
		if textY >= y+height-2 {
			break
		}
		pdf.Text(x+2, textY, fitText(pdf, tr(line.Text), colActivities-4))
		if line.Hours > 0 {
			textCenter(pdf, hoursX+colHours/2, textY, FormatHours(line.Hours))
		}
		textY += lineSpacing
	}

	totalX := hoursX + colHours
	pdf.Rect(totalX, y, colTotal, height, "D")
	if row.Total > 0 {
		textCenter(pdf, totalX+colTotal/2, y+height/2+2, FormatHours(row.Total))
	}
}

func drawRemarks(pdf *fpdf.Fpdf, tr func(string) string, y float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(marginLeft, y, "Besondere Bemerkungen:")

	pdf.SetFont("Helvetica", "", 10)
	half := (tableWidth - 10) / 2
	pdf.Text(marginLeft, y+12, "Auszubildender:")
	pdf.Rect(marginLeft, y+15, half, 20, "D")
	pdf.Text(marginLeft+half+10, y+12, "Ausbilder:")
	pdf.Rect(marginLeft+half+10, y+15, half, 20, "D")

	signY := y + 45
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(marginLeft, signY, tr("Für die Richtigkeit:"))

	sign := (tableWidth - 20) / 2
	pdf.Line(marginLeft, signY+15, marginLeft+sign-10, signY+15)
	pdf.Line(marginLeft+sign+10, signY+15, marginRight, signY+15)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(marginLeft, signY+22, "Auszubildender")
	pdf.Text(marginLeft+sign+10, signY+22, "Ausbilder")
}

func textRight(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func textCenter(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

// fitText обрезает уже перекодированную в cp1252 строку по ширине колонки
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 && pdf.GetStringWidth(s+ellipsis) > width {
		s = s[:len(s)-1]
	}
	return s + ellipsis
}
