package awards

import "strings"

// monthNumbers maps normalized month names to month numbers. The
// compound "oct/nov" is a basketball-reference convention for the
// first award period of a season; it resolves to November, the later
// month.
var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
	"oct/nov": 11,
}

// MonthNumber resolves a month name ("Oct.", "october", "Jan") to its
// number, 1 through 12. Matching is case-insensitive and ignores
// periods. The second return is false for unrecognized names.
func MonthNumber(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), ".", "")
	n, ok := monthNumbers[key]
	return n, ok
}
