package countdown

import (
	"testing"
	"time"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// noon on a fixed day, local zone, matching how date-only input is parsed
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func newFixedCalculator() *Calculator {
	return New(fixedClock{t: testNow})
}

func TestIsValidDate(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"rfc3339", "2025-07-01T10:00:00Z", true},
		{"rfc3339 with offset", "2025-07-01T10:00:00-03:00", true},
		{"datetime no zone", "2025-07-01T10:00:00", true},
		{"datetime minutes only", "2025-07-01T10:00", true},
		{"date only", "2025-07-01", true},
		{"leap day valid year", "2024-02-29", true},
		{"leap day invalid year", "2025-02-29", false},
		{"month out of range", "2025-13-01", false},
		{"not a date", "not-a-date", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.IsValidDate(tt.input); got != tt.expected {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsFutureDateAndIsExpired(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name    string
		input   string
		future  bool
		expired bool
	}{
		{"next month", testNow.AddDate(0, 1, 0).Format(time.RFC3339), true, false},
		{"in one second", testNow.Add(time.Second).Format(time.RFC3339), true, false},
		{"one second ago", testNow.Add(-time.Second).Format(time.RFC3339), false, true},
		{"last year", testNow.AddDate(-1, 0, 0).Format(time.RFC3339), false, true},
		{"exactly now", testNow.Format(time.RFC3339), false, false},
		{"unparseable", "not-a-date", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.IsFutureDate(tt.input); got != tt.future {
				t.Errorf("IsFutureDate(%q) = %v, want %v", tt.input, got, tt.future)
			}
			if got := calc.IsExpired(tt.input); got != tt.expired {
				t.Errorf("IsExpired(%q) = %v, want %v", tt.input, got, tt.expired)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"36 hours ahead", testNow.Add(36 * time.Hour).Format(time.RFC3339), 1},
		{"23 hours ahead", testNow.Add(23 * time.Hour).Format(time.RFC3339), 0},
		{"ten days ahead", testNow.Add(10 * 24 * time.Hour).Format(time.RFC3339), 10},
		{"in the past", testNow.Add(-48 * time.Hour).Format(time.RFC3339), 0},
		{"unparseable", "not-a-date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.DaysUntil(tt.input); got != tt.expected {
				t.Errorf("DaysUntil(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUntil(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name     string
		input    string
		expected Breakdown
	}{
		{
			"tomorrow same time",
			testNow.Add(24 * time.Hour).Format(time.RFC3339),
			Breakdown{Days: 1},
		},
		{
			"mixed units",
			testNow.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second).Format(time.RFC3339),
			Breakdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
		{
			"just under a day",
			testNow.Add(24*time.Hour - time.Second).Format(time.RFC3339),
			Breakdown{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{"past", testNow.Add(-time.Hour).Format(time.RFC3339), Breakdown{}},
		{"exactly now", testNow.Format(time.RFC3339), Breakdown{}},
		{"unparseable", "not-a-date", Breakdown{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.Until(tt.input); got != tt.expected {
				t.Errorf("Until(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

// The four fields must reconstruct the exact whole-second difference for any
// future target.
func TestUntilReconstructsTotalSeconds(t *testing.T) {
	calc := newFixedCalculator()

	offsets := []time.Duration{
		time.Second,
		59 * time.Second,
		time.Minute,
		61 * time.Minute,
		24 * time.Hour,
		24*time.Hour + time.Second,
		100*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second,
	}

	for _, offset := range offsets {
		date := testNow.Add(offset).Format(time.RFC3339)
		b := calc.Until(date)

		reconstructed := time.Duration(b.Days)*24*time.Hour +
			time.Duration(b.Hours)*time.Hour +
			time.Duration(b.Minutes)*time.Minute +
			time.Duration(b.Seconds)*time.Second

		if reconstructed != offset {
			t.Errorf("offset %v: reconstructed %v from %+v", offset, reconstructed, b)
		}

		if b.Hours < 0 || b.Hours > 23 || b.Minutes < 0 || b.Minutes > 59 || b.Seconds < 0 || b.Seconds > 59 {
			t.Errorf("offset %v: field out of natural range: %+v", offset, b)
		}
	}
}

func TestClassify(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name     string
		input    string
		expected EventState
	}{
		{"later today", testNow.Add(5 * time.Hour).Format(time.RFC3339), StateToday},
		{"earlier today", testNow.Add(-5 * time.Hour).Format(time.RFC3339), StateToday},
		{"tomorrow", testNow.Add(24 * time.Hour).Format(time.RFC3339), StateUpcoming},
		{"yesterday", testNow.Add(-24 * time.Hour).Format(time.RFC3339), StateExpired},
		{"unparseable", "not-a-date", StateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRelativeText(t *testing.T) {
	calc := newFixedCalculator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"expired", testNow.Add(-time.Hour).Format(time.RFC3339), "Expirado"},
		{"later today", testNow.Add(3 * time.Hour).Format(time.RFC3339), "Hoje!"},
		{"tomorrow", testNow.Add(25 * time.Hour).Format(time.RFC3339), "Amanhã"},
		{"in ten days", testNow.Add(10 * 24 * time.Hour).Format(time.RFC3339), "Em 10 dias"},
		{"unparseable", "not-a-date", "Expirado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.RelativeText(tt.input); got != tt.expected {
				t.Errorf("RelativeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-12-31"); got != "31/12/2025" {
		t.Errorf("FormatDate = %q, want %q", got, "31/12/2025")
	}
	if got := FormatDate("garbage"); got != "Data inválida" {
		t.Errorf("FormatDate = %q, want %q", got, "Data inválida")
	}
	if got := FormatDateTime("2025-12-31T18:30"); got != "31/12/2025 18:30" {
		t.Errorf("FormatDateTime = %q, want %q", got, "31/12/2025 18:30")
	}
}

func TestFormatBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		input    Breakdown
		expected string
	}{
		{"full", Breakdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, "2d 3h 4m 5s"},
		{"no days", Breakdown{Hours: 3, Minutes: 4, Seconds: 5}, "3h 4m 5s"},
		{"minutes only", Breakdown{Minutes: 4, Seconds: 5}, "4m 5s"},
		{"seconds only", Breakdown{Seconds: 5}, "5s"},
		{"zero", Breakdown{}, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBreakdown(tt.input); got != tt.expected {
				t.Errorf("FormatBreakdown(%+v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
