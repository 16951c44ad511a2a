package handler

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.October, 8, 15, 30, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"08.10.2025", time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), false},
		{"06-10-2025", time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), false},
		{"2025-01-31", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"24.12", time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), false},
		{"heute", time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), false},
		{"Вчера", time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), false},
		{"31.02.2025", time.Time{}, true},
		{"Coding", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.in, testNow)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitDateArg(t *testing.T) {
	tests := []struct {
		in       string
		wantDate time.Time
		wantRest string
	}{
		{"06.10.2025 Coding; Review (2h)", time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "Coding; Review (2h)"},
		{"Coding; Review", time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), "Coding; Review"},
		{"gestern", time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), ""},
		{"", time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), ""},
	}

	for _, tt := range tests {
		date, rest := splitDateArg(tt.in, testNow)
		if !date.Equal(tt.wantDate) || rest != tt.wantRest {
			t.Errorf("splitDateArg(%q) = %v, %q, want %v, %q", tt.in, date, rest, tt.wantDate, tt.wantRest)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"Montag":  time.Monday,
		"sa":      time.Saturday,
		"sunday":  time.Sunday,
		"Среда":   time.Wednesday,
		" fr ":    time.Friday,
		"четверг": time.Thursday,
	}
	for in, want := range tests {
		got, err := parseWeekday(in)
		if err != nil || got != want {
			t.Errorf("parseWeekday(%q) = %v, %v, want %v", in, got, err, want)
		}
	}

	if _, err := parseWeekday("Feiertag"); err == nil {
		t.Error("parseWeekday(Feiertag) err = nil")
	}
}

func TestParseOnOff(t *testing.T) {
	for _, in := range []string{"on", "AN", "вкл"} {
		if got, err := parseOnOff(in); err != nil || !got {
			t.Errorf("parseOnOff(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"off", "aus", "выкл"} {
		if got, err := parseOnOff(in); err != nil || got {
			t.Errorf("parseOnOff(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseOnOff("vielleicht"); err == nil {
		t.Error("parseOnOff(vielleicht) err = nil")
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"8", 8, false},
		{"7.5", 7.5, false},
		{"7,5", 7.5, false},
		{"-1", 0, true},
		{"acht", 0, true},
	}
	for _, tt := range tests {
		got, err := parseHours(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseHours(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestParseMonthArgs(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{"", 2025, 10, false},
		{"3", 2025, 3, false},
		{"2024 12", 2024, 12, false},
		{"13", 0, 0, true},
		{"1999 5", 0, 0, true},
		{"2024 5 1", 0, 0, true},
	}
	for _, tt := range tests {
		year, month, err := parseMonthArgs(tt.in, testNow)
		if (err != nil) != tt.wantErr || year != tt.wantYear || month != tt.wantMonth {
			t.Errorf("parseMonthArgs(%q) = %d, %d, %v", tt.in, year, month, err)
		}
	}
}
