package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brefstats/internal/boxscore"
	"brefstats/internal/config"
	"brefstats/internal/fetch"
	"brefstats/internal/logger"
	"brefstats/internal/metrics"
	"brefstats/internal/store"
)

const dateLayout = "2006-01-02"

// app bundles the collaborators shared by all commands.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	client *fetch.Client
}

func newApp() (*app, error) {
	log, err := logger.New(flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	st, err := store.Open(cfg.DSN(), log)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		log:    log,
		store:  st,
		client: fetch.NewClient(flagQPS, log),
	}, nil
}

func newGamesCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "games",
		Short: "Scrape box scores for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(dateLayout, startDate)
			if err != nil {
				return fmt.Errorf("invalid --start-date (want YYYY-MM-DD): %w", err)
			}
			end, err := time.Parse(dateLayout, endDate)
			if err != nil {
				return fmt.Errorf("invalid --end-date (want YYYY-MM-DD): %w", err)
			}
			if start.After(end) {
				return errors.New("start date cannot be after end date")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			ctx := context.Background()
			totalGames, totalPlayers := 0, 0
			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				games, players := a.scrapeDay(ctx, day)
				totalGames += games
				totalPlayers += players
			}

			a.log.Info("games scrape finished",
				zap.Int("games", totalGames),
				zap.Int("player_lines", totalPlayers))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "First date to scrape, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Last date to scrape, YYYY-MM-DD (required)")
	cmd.MarkFlagRequired("start-date")
	cmd.MarkFlagRequired("end-date")

	return cmd
}

// scrapeDay processes one calendar day: daily index, then every box
// score it links. Returns processed game and inserted player counts.
func (a *app) scrapeDay(ctx context.Context, day time.Time) (int, int) {
	dateStr := day.Format(dateLayout)
	indexURL := fetch.DailyIndexURL(day)
	a.log.Info("processing date", zap.String("date", dateStr), zap.String("url", indexURL))

	parser := boxscore.NewParser(a.log)

	doc, err := a.client.GetDocument(ctx, indexURL)
	if err != nil {
		metrics.FetchErrors.Inc()
		return 0, 0
	}
	refs := parser.ExtractBoxScoreRefs(doc)
	a.log.Info("daily index parsed", zap.String("date", dateStr), zap.Int("games", len(refs)))

	games, players := 0, 0
	for _, ref := range refs {
		boxDoc, err := a.client.GetDocument(ctx, ref)
		if err != nil {
			metrics.FetchErrors.Inc()
			continue
		}
		game, err := parser.ExtractGame(boxDoc, ref)
		if err != nil {
			a.log.Error("rejecting box score page", zap.String("url", ref), zap.Error(err))
			continue
		}
		game.GameDate = dateStr

		inserted, err := a.store.SaveGame(game)
		if err != nil {
			a.log.Error("saving game failed", zap.String("url", ref), zap.Error(err))
			continue
		}
		games++
		metrics.GamesProcessed.Inc()
		if inserted {
			players += len(game.Players)
			metrics.PlayerLinesInserted.Add(float64(len(game.Players)))
		}
	}
	return games, players
}
