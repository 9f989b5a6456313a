package awards

import "strconv"

// SeasonYear resolves which calendar year a month falls in for a
// season labeled "YYYY-YY". Months August through December belong to
// the season's starting year, January through July to the year after.
// Returns false for malformed labels or out-of-range months.
func SeasonYear(season string, month int) (int, bool) {
	startYear, ok := seasonStartYear(season)
	if !ok {
		return 0, false
	}
	if month < 1 || month > 12 {
		return 0, false
	}
	if month >= 8 {
		return startYear, true
	}
	return startYear + 1, true
}

// seasonStartYear parses the first year out of a "YYYY-YY" season
// label. Both halves must be numeric.
func seasonStartYear(season string) (int, bool) {
	dash := -1
	for i, r := range season {
		if r == '-' {
			dash = i
			break
		}
	}
	if dash <= 0 || dash == len(season)-1 {
		return 0, false
	}
	if !isDigits(season[:dash]) || !isDigits(season[dash+1:]) {
		return 0, false
	}
	year, err := strconv.Atoi(season[:dash])
	if err != nil {
		return 0, false
	}
	return year, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
