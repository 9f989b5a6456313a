// Package store persists extracted records to Postgres. Natural-key
// conflicts are ignored, so re-delivering the same game or award is an
// idempotent no-op.
package store

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"brefstats/internal/model"
)

// Store wraps the database connection.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the database and migrates the schema.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.AutoMigrate(
		&model.Game{},
		&model.PlayerStatLine{},
		&model.PlayerOfMonth{},
		&model.RookieOfMonth{},
		&model.CoachOfMonth{},
		&model.PlayerOfWeek{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// SaveGame inserts a game and its player stat lines. The game is keyed
// by box score URL; when it already exists nothing is written, and
// player lines only ever accompany a fresh game row, so re-scraping a
// day cannot duplicate stats. Returns whether the game was inserted.
func (s *Store) SaveGame(game *model.Game) (bool, error) {
	players := game.Players
	game.Players = nil

	res := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "box_score_url"}},
			DoNothing: true,
		}).
		Create(game)
	if res.Error != nil {
		return false, fmt.Errorf("inserting game %s: %w", game.BoxScoreURL, res.Error)
	}
	if res.RowsAffected == 0 {
		s.log.Debug("game already stored", zap.String("url", game.BoxScoreURL))
		return false, nil
	}

	for i := range players {
		players[i].GameID = game.ID
	}
	if len(players) > 0 {
		if err := s.db.Create(&players).Error; err != nil {
			return true, fmt.Errorf("inserting player stats for %s: %w", game.BoxScoreURL, err)
		}
	}
	game.Players = players
	return true, nil
}

// SaveMonthly inserts a monthly award row into the table for its kind.
// Returns whether a new row was written.
func (s *Store) SaveMonthly(award model.MonthlyAward) (bool, error) {
	var row interface{}
	switch award.Kind {
	case model.KindPlayerOfMonth:
		row = &model.PlayerOfMonth{
			PlayerName:       award.EntityName,
			TeamAbbreviation: award.TeamAbbr,
			MonthNumeric:     award.Month,
			YearNumeric:      award.Year,
			Conference:       award.Conference,
			LeagueName:       award.League,
			SourceURL:        award.SourceURL,
		}
	case model.KindRookieOfMonth:
		row = &model.RookieOfMonth{
			PlayerName:       award.EntityName,
			TeamAbbreviation: award.TeamAbbr,
			MonthNumeric:     award.Month,
			YearNumeric:      award.Year,
			Conference:       award.Conference,
			LeagueName:       award.League,
			SourceURL:        award.SourceURL,
		}
	case model.KindCoachOfMonth:
		row = &model.CoachOfMonth{
			CoachName:        award.EntityName,
			TeamAbbreviation: award.TeamAbbr,
			MonthNumeric:     award.Month,
			YearNumeric:      award.Year,
			Conference:       award.Conference,
			LeagueName:       award.League,
			SourceURL:        award.SourceURL,
		}
	default:
		return false, fmt.Errorf("unknown award kind: %s", award.Kind)
	}

	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, fmt.Errorf("inserting %s for %s: %w", award.Kind, award.EntityName, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// SaveWeekly inserts a player-of-the-week row. Returns whether a new
// row was written.
func (s *Store) SaveWeekly(award model.WeeklyAward) (bool, error) {
	row := &model.PlayerOfWeek{
		PlayerName:       award.PlayerName,
		TeamAbbreviation: award.TeamAbbr,
		WeekStartDate:    award.WeekStart,
		WeekEndDate:      award.WeekEnd,
		Conference:       award.Conference,
		LeagueName:       award.League,
		SourceURL:        award.SourceURL,
	}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, fmt.Errorf("inserting player of the week for %s: %w", award.PlayerName, res.Error)
	}
	return res.RowsAffected > 0, nil
}
