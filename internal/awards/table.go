package awards

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"brefstats/internal/model"
	"brefstats/internal/page"
)

// Award page URLs, keyed by the short page name used in table ids.
var PageURLs = map[string]string{
	"pom": "https://www.basketball-reference.com/awards/pom.html",
	"pow": "https://www.basketball-reference.com/awards/pow.html",
	"rom": "https://www.basketball-reference.com/awards/rom.html",
	"com": "https://www.basketball-reference.com/awards/com.html",
}

// TableSelectors builds the ordered selector chain for locating an
// award table, from the most specific id convention down to the first
// table on the page.
func TableSelectors(short string) []string {
	long := "awards_NBA_" + strings.ToUpper(short)
	return []string{
		fmt.Sprintf("div#all_%s table#%s", long, long),
		"table#" + long,
		fmt.Sprintf("div#all_%s table#%s", short, short),
		"table#" + short,
		"div#all_awards table#awards",
		"table#awards",
		"table",
	}
}

// TableParser extracts award rows from located tables.
type TableParser struct {
	log *zap.Logger
}

// NewTableParser creates a TableParser logging diagnostics to log.
func NewTableParser(log *zap.Logger) *TableParser {
	return &TableParser{log: log}
}

// FindTable tries each selector in order and returns the first table
// element found. A selector may land on a wrapper div, in which case
// the table inside it is used.
func (t *TableParser) FindTable(doc page.Document, selectors []string, awardName string) (page.Element, bool) {
	if doc == nil {
		return nil, false
	}
	for _, selector := range selectors {
		els := doc.Select(selector)
		if len(els) == 0 {
			continue
		}
		el := els[0]
		if el.Tag() != "table" {
			tables := el.Select("table")
			if len(tables) == 0 {
				t.log.Warn("selector matched a non-table element with no child table",
					zap.String("selector", selector),
					zap.String("award", awardName))
				continue
			}
			el = tables[0]
		}
		t.log.Debug("award table found",
			zap.String("selector", selector),
			zap.String("award", awardName))
		return el, true
	}
	t.log.Error("no award table found with any selector",
		zap.String("award", awardName),
		zap.Strings("selectors", selectors))
	return nil, false
}

// ParseMonthly extracts rows from a monthly award table (player,
// rookie or coach of the month). Rows whose month or season cannot be
// resolved are skipped with a diagnostic. League and season filtering
// is left to the caller.
func (t *TableParser) ParseMonthly(table page.Element, kind model.AwardKind, sourceRef string) []model.MonthlyAward {
	var records []model.MonthlyAward
	for _, row := range table.Select("tr") {
		if _, ok := row.Find("th", map[string]string{"scope": "col"}); ok {
			continue
		}
		cells := row.FindAll("td", nil)
		if len(cells) < 6 {
			if row.Text() != "" {
				t.log.Warn("skipping short monthly award row",
					zap.String("award", string(kind)),
					zap.String("row", truncate(row.Text(), 100)))
			}
			continue
		}

		season := cells[0].Text()
		league := cells[1].Text()
		name := anchorOrText(cells[2])
		conf := cells[3].Text()
		monthStr := cells[4].Text()
		team := anchorOrText(cells[5])

		seasonStart, ok := seasonStartYear(season)
		if !ok {
			t.log.Warn("unparseable season label in monthly award row",
				zap.String("award", string(kind)),
				zap.String("season", season),
				zap.String("entity", name))
			continue
		}
		month, ok := MonthNumber(monthStr)
		if !ok {
			t.log.Warn("unknown month in monthly award row",
				zap.String("award", string(kind)),
				zap.String("month", monthStr),
				zap.String("entity", name),
				zap.String("season", season))
			continue
		}
		year, ok := SeasonYear(season, month)
		if !ok {
			t.log.Warn("could not resolve award year",
				zap.String("award", string(kind)),
				zap.String("season", season),
				zap.Int("month", month),
				zap.String("entity", name))
			continue
		}

		records = append(records, model.MonthlyAward{
			Kind:        kind,
			EntityName:  name,
			TeamAbbr:    team,
			Month:       month,
			Year:        year,
			Conference:  nilIfEmpty(conf),
			League:      league,
			SeasonStart: seasonStart,
			SourceURL:   sourceRef,
		})
	}
	return records
}

// ParseWeekly extracts rows from the player-of-the-week table. The
// table groups rows under occasional season header rows rather than
// repeating the season per row, so the current season is carried
// forward; some rows also restate it in their first cell.
func (t *TableParser) ParseWeekly(table page.Element, sourceRef string) []model.WeeklyAward {
	var records []model.WeeklyAward
	currentSeason := 0

	for _, row := range table.Select("tr") {
		if _, ok := row.Find("th", map[string]string{"scope": "col"}); ok {
			continue
		}
		if th, ok := row.Find("th", map[string]string{"data-stat": "season"}); ok && th.Text() != "" {
			if year, ok := leadingYear(th.Text()); ok {
				currentSeason = year
			} else {
				t.log.Warn("could not parse season from weekly award header",
					zap.String("header", th.Text()))
			}
			continue
		}

		cells := row.FindAll("td", nil)
		if len(cells) < 5 {
			if row.Text() != "" {
				t.log.Warn("skipping short weekly award row",
					zap.String("row", truncate(row.Text(), 100)))
			}
			continue
		}

		season := currentSeason
		offset := 0
		if first := cells[0].Text(); looksLikeSeason(first) {
			if year, ok := leadingYear(first); ok {
				season = year
				offset = 1
				if len(cells) < offset+5 {
					t.log.Warn("skipping weekly award row with leading season but too few cells",
						zap.String("row", truncate(row.Text(), 100)))
					continue
				}
			}
		}
		if season == 0 {
			t.log.Warn("season year undetermined for weekly award row",
				zap.String("row", truncate(row.Text(), 100)))
			continue
		}

		league := cells[offset].Text()
		weekStr := cells[offset+1].Text()
		name := anchorOrText(cells[offset+2])
		conf := cells[offset+3].Text()
		team := anchorOrText(cells[offset+4])

		weekStart, weekEnd, ok := WeekRange(weekStr, season)
		if !ok {
			t.log.Warn("unparseable week string in weekly award row",
				zap.String("week", weekStr),
				zap.String("player", name),
				zap.Int("season", season))
			continue
		}

		records = append(records, model.WeeklyAward{
			PlayerName:  name,
			TeamAbbr:    team,
			WeekStart:   weekStart,
			WeekEnd:     weekEnd,
			Conference:  nilIfEmpty(conf),
			League:      league,
			SeasonStart: season,
			SourceURL:   sourceRef,
		})
	}
	return records
}

// anchorOrText prefers the text of a nested link over the raw cell
// text (cells carry footnotes outside the anchor).
func anchorOrText(cell page.Element) string {
	if a, ok := cell.Find("a", nil); ok {
		return a.Text()
	}
	return cell.Text()
}

// looksLikeSeason reports whether a cell holds a season label such as
// "2022-23" (an en dash variant also appears).
func looksLikeSeason(s string) bool {
	if !strings.ContainsAny(s, "-") && !strings.Contains(s, "–") {
		return false
	}
	stripped := strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), "–", "")
	return isDigits(stripped)
}

// leadingYear parses the year before the dash in a season label.
func leadingYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if r == '-' || r == '–' {
			s = s[:i]
			break
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
