package awards

import "testing"

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		startYear int
		wantStart string
		wantEnd   string
		ok        bool
	}{
		{"same month range", "Oct 24-30", 2023, "2023-10-24", "2023-10-30", true},
		{"year-crossing range", "Dec 28-Jan 3", 2022, "2022-12-28", "2023-01-03", true},
		{"month-crossing same year", "Feb 27-Mar 5", 2022, "2023-02-27", "2023-03-05", true},
		{"single day", "Nov 7", 2023, "2023-11-07", "2023-11-07", true},
		{"dotted month", "Oct. 24-30", 2023, "2023-10-24", "2023-10-30", true},
		{"spaced hyphen rejoined", "Oct 24 - 30", 2023, "2023-10-24", "2023-10-30", true},
		{"spring month in following year", "Apr 3-9", 2022, "2023-04-03", "2023-04-09", true},
		{"invalid day rejected not clamped", "Oct 32-35", 2023, "", "", false},
		{"day zero", "Oct 0-5", 2023, "", "", false},
		{"spaced month-crossing unsupported", "Dec 28 - Jan 3", 2022, "", "", false},
		{"month crossing missing end day", "Dec 28-Jan", 2022, "", "", false},
		{"unknown month", "Smarch 1-7", 2023, "", "", false},
		{"no day token", "Oct", 2023, "", "", false},
		{"garbage day range", "Oct x-y", 2023, "", "", false},
		{"too many tokens", "Oct 24-30 extra junk", 2023, "", "", false},
		{"empty", "", 2023, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := WeekRange(tt.input, tt.startYear)
			if ok != tt.ok || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("WeekRange(%q, %d) = (%q, %q, %v), expected (%q, %q, %v)",
					tt.input, tt.startYear, start, end, ok, tt.wantStart, tt.wantEnd, tt.ok)
			}
		})
	}
}
