// Package awards parses the monthly and weekly award pages and
// resolves their free-text month and week labels into calendar dates.
//
// The resolvers (MonthNumber, SeasonYear, WeekRange) are pure
// functions; a season label like "2022-23" plus a month or week string
// is all the context they need. Rows that fail resolution are skipped
// with a diagnostic, never aborting a page.
package awards
