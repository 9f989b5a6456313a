package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brefstats/internal/awards"
	"brefstats/internal/metrics"
	"brefstats/internal/model"
)

// Only NBA rows are stored; the award tables mix in ABA and BAA
// history.
const targetLeague = "NBA"

var monthlyPages = []struct {
	kind  model.AwardKind
	short string
}{
	{model.KindPlayerOfMonth, "pom"},
	{model.KindRookieOfMonth, "rom"},
	{model.KindCoachOfMonth, "com"},
}

func newAwardsCmd() *cobra.Command {
	var startYear, endYear int

	cmd := &cobra.Command{
		Use:   "awards",
		Short: "Scrape monthly and weekly awards for a season range",
		Long: `Scrapes player of the month, player of the week, rookie of the
month and coach of the month. Years name season starts: 2022 means
the 2022-23 season.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startYear > endYear {
				return errors.New("start year cannot be after end year")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			ctx := context.Background()
			parser := awards.NewTableParser(a.log)

			for _, pg := range monthlyPages {
				n, err := a.scrapeMonthly(ctx, parser, pg.kind, pg.short, startYear, endYear)
				if err != nil {
					a.log.Error("monthly award scrape failed",
						zap.String("award", string(pg.kind)), zap.Error(err))
					continue
				}
				a.log.Info("monthly award scrape finished",
					zap.String("award", string(pg.kind)), zap.Int("inserted", n))
			}

			n, err := a.scrapeWeekly(ctx, parser, startYear, endYear)
			if err != nil {
				a.log.Error("weekly award scrape failed", zap.Error(err))
			} else {
				a.log.Info("weekly award scrape finished", zap.Int("inserted", n))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&startYear, "start-year", 0, "First season start year, e.g. 2022 (required)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Last season start year (required)")
	cmd.MarkFlagRequired("start-year")
	cmd.MarkFlagRequired("end-year")

	return cmd
}

func (a *app) scrapeMonthly(ctx context.Context, parser *awards.TableParser, kind model.AwardKind, short string, startYear, endYear int) (int, error) {
	url := awards.PageURLs[short]
	doc, err := a.client.GetDocument(ctx, url)
	if err != nil {
		metrics.FetchErrors.Inc()
		return 0, err
	}
	table, ok := parser.FindTable(doc, awards.TableSelectors(short), string(kind))
	if !ok {
		return 0, fmt.Errorf("no award table found on %s", url)
	}

	inserted := 0
	for _, rec := range parser.ParseMonthly(table, kind, url) {
		if rec.League != targetLeague {
			a.log.Debug("skipping non-NBA award row",
				zap.String("award", string(kind)), zap.String("entity", rec.EntityName))
			continue
		}
		if rec.SeasonStart < startYear || rec.SeasonStart > endYear {
			continue
		}
		fresh, err := a.store.SaveMonthly(rec)
		if err != nil {
			a.log.Error("saving monthly award failed",
				zap.String("award", string(kind)),
				zap.String("entity", rec.EntityName),
				zap.Error(err))
			continue
		}
		if fresh {
			inserted++
			metrics.AwardsInserted.WithLabelValues(string(kind)).Inc()
		}
	}
	return inserted, nil
}

func (a *app) scrapeWeekly(ctx context.Context, parser *awards.TableParser, startYear, endYear int) (int, error) {
	url := awards.PageURLs["pow"]
	doc, err := a.client.GetDocument(ctx, url)
	if err != nil {
		metrics.FetchErrors.Inc()
		return 0, err
	}
	table, ok := parser.FindTable(doc, awards.TableSelectors("pow"), "player_of_the_week")
	if !ok {
		return 0, fmt.Errorf("no award table found on %s", url)
	}

	inserted := 0
	for _, rec := range parser.ParseWeekly(table, url) {
		if rec.League != targetLeague {
			continue
		}
		if rec.SeasonStart < startYear || rec.SeasonStart > endYear {
			continue
		}
		fresh, err := a.store.SaveWeekly(rec)
		if err != nil {
			a.log.Error("saving weekly award failed",
				zap.String("player", rec.PlayerName), zap.Error(err))
			continue
		}
		if fresh {
			inserted++
			metrics.AwardsInserted.WithLabelValues("player_of_the_week").Inc()
		}
	}
	return inserted, nil
}
