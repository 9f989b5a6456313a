package awards

import (
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// WeekRange resolves a week label like "Oct 24-30", "Dec 28-Jan 3" or
// "Nov 7" into ISO start and end dates, using the season's starting
// year to pin down the calendar year. Returns ok=false for any shape
// it cannot resolve, including calendar-invalid days. Callers skip
// the row, they never abort the page.
//
// A form with free-standing hyphens around month names ("Dec 28 - Jan
// 3") does not collapse to the supported token counts and is rejected.
func WeekRange(text string, seasonStartYear int) (start, end string, ok bool) {
	if text == "" {
		return "", "", false
	}

	tokens := strings.Fields(strings.ReplaceAll(text, ".", ""))

	// "Month D1 - D2" with the hyphen as its own token rejoins to
	// "Month D1-D2".
	if len(tokens) == 4 && tokens[2] == "-" {
		tokens = []string{tokens[0], tokens[1] + "-" + tokens[3]}
	}
	if len(tokens) < 2 || len(tokens) > 3 {
		return "", "", false
	}

	startMonth, ok := MonthNumber(tokens[0])
	if !ok {
		return "", "", false
	}
	startYear := seasonStartYear
	if startMonth < 8 {
		startYear = seasonStartYear + 1
	}

	dayRange := tokens[1]
	var startDay, endDay, endMonth, endYear int

	switch {
	case strings.Contains(dayRange, "-"):
		first, rest, _ := strings.Cut(dayRange, "-")
		d, err := strconv.Atoi(first)
		if err != nil {
			return "", "", false
		}
		startDay = d

		if month, isMonth := MonthNumber(rest); isMonth {
			// Month-crossing range "D1-MonthName"; the end day is the
			// third token ("Dec 28-Jan 3").
			if len(tokens) < 3 {
				return "", "", false
			}
			d, err := strconv.Atoi(tokens[2])
			if err != nil {
				return "", "", false
			}
			endDay = d
			endMonth = month
			endYear = startYear
			if endMonth < startMonth {
				endYear = startYear + 1
			}
		} else {
			// Same-month range "D1-D2".
			d, err := strconv.Atoi(rest)
			if err != nil {
				return "", "", false
			}
			endDay = d
			endMonth = startMonth
			endYear = startYear
		}

	case isDigits(dayRange):
		// One-day week: "Nov 7".
		startDay, _ = strconv.Atoi(dayRange)
		endDay = startDay
		endMonth = startMonth
		endYear = startYear

	default:
		return "", "", false
	}

	startDate, ok := makeDate(startYear, startMonth, startDay)
	if !ok {
		return "", "", false
	}
	endDate, ok := makeDate(endYear, endMonth, endDay)
	if !ok {
		return "", "", false
	}
	return startDate.Format(isoDate), endDate.Format(isoDate), true
}

// makeDate builds a date and verifies it is a real calendar day.
// time.Date normalizes overflow (Oct 32 becomes Nov 1); an invalid day
// must fail, not be clamped or rolled over.
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
