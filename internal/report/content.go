package report

import (
	"regexp"
	"strconv"
	"strings"

	"berichtsheft-bot/internal/models"
)

// Separator разделитель активностей внутри дня
const Separator = "; "

var hoursSuffix = regexp.MustCompile(`\s*\(\s*(\d+(?:[.,]\d+)?)\s*h\s*\)\s*$`)

// ParsedActivity активность, восстановленная из строки дня
type ParsedActivity struct {
	Text      string
	Hours     float64
	Annotated bool // была ли у сегмента приписка (Xh)
}

// ParseContent разбивает строку дня на активности.
// Сегмент без приписки или с битой припиской получает 0 часов.
func ParseContent(content string) []ParsedActivity {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var out []ParsedActivity
	for _, segment := range strings.Split(content, Separator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		out = append(out, ParseSegment(segment))
	}
	return out
}

// ParseSegment отделяет приписку "(Xh)" в конце сегмента от текста
func ParseSegment(segment string) ParsedActivity {
	segment = strings.TrimSpace(segment)
	m := hoursSuffix.FindStringSubmatchIndex(segment)
	if m == nil {
		return ParsedActivity{Text: segment}
	}

	raw := strings.Replace(segment[m[2]:m[3]], ",", ".", 1)
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ParsedActivity{Text: segment}
	}
	return ParsedActivity{
		Text:      strings.TrimSpace(segment[:m[0]]),
		Hours:     hours,
		Annotated: true,
	}
}

// FormatContent собирает строку дня из активностей: "Text (2h); Text2".
// Для нулевой длительности приписка не пишется.
func FormatContent(activities []models.Activity) string {
	parts := make([]string, 0, len(activities))
	for _, a := range activities {
		if a.Duration > 0 {
			parts = append(parts, a.Description+" ("+FormatHours(a.Duration)+"h)")
			continue
		}
		parts = append(parts, a.Description)
	}
	return strings.Join(parts, Separator)
}

// FormatHours 8 -> "8", 2.5 -> "2.5"
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
