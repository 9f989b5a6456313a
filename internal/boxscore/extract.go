package boxscore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"brefstats/internal/model"
	"brefstats/internal/page"
)

// Hard rejection reasons. A page that trips one of these produces no
// game record and no player stat lines.
var (
	ErrNoDocument    = errors.New("no document")
	ErrNoScoreRegion = errors.New("no score region")
	ErrTeamNames     = errors.New("could not extract two team names")
	ErrScores        = errors.New("could not extract two final scores")
)

// Minutes-field values that mark a player who did not participate.
// Rows carrying one of these are skipped without a diagnostic.
var nonPlayingStatuses = map[string]bool{
	"Did Not Play":     true,
	"Not With Team":    true,
	"Did Not Dress":    true,
	"Inactive":         true,
	"Player Suspended": true,
}

// Parser extracts structured records from parsed pages.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a Parser logging diagnostics to log.
func NewParser(log *zap.Logger) *Parser {
	return &Parser{log: log}
}

// ExtractGame parses a box score page into a game record with its
// player stat lines. sourceRef is the page URL; it becomes the game's
// natural key and is carried into every diagnostic.
func (p *Parser) ExtractGame(doc page.Document, sourceRef string) (*model.Game, error) {
	if doc == nil {
		return nil, fmt.Errorf("parsing %s: %w", sourceRef, ErrNoDocument)
	}

	boxes := doc.Select("div.scorebox")
	if len(boxes) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", sourceRef, ErrNoScoreRegion)
	}
	scorebox := boxes[0]

	// Away team is listed first, home team second.
	var teamNames []string
	for _, strong := range scorebox.Select("strong") {
		if len(teamNames) == 2 {
			break
		}
		if a, ok := strong.Find("a", nil); ok {
			teamNames = append(teamNames, a.Text())
		} else {
			teamNames = append(teamNames, strong.Text())
		}
	}
	if len(teamNames) != 2 {
		return nil, fmt.Errorf("parsing %s (found %d team names): %w", sourceRef, len(teamNames), ErrTeamNames)
	}

	scoreEls := scorebox.Select("div.score")
	if len(scoreEls) < 2 {
		return nil, fmt.Errorf("parsing %s (found %d scores): %w", sourceRef, len(scoreEls), ErrScores)
	}
	awayScore, err := strconv.Atoi(scoreEls[0].Text())
	if err != nil {
		return nil, fmt.Errorf("parsing %s (away score %q): %w", sourceRef, scoreEls[0].Text(), ErrScores)
	}
	homeScore, err := strconv.Atoi(scoreEls[1].Text())
	if err != nil {
		return nil, fmt.Errorf("parsing %s (home score %q): %w", sourceRef, scoreEls[1].Text(), ErrScores)
	}

	game := &model.Game{
		AwayTeam:    teamNames[0],
		HomeTeam:    teamNames[1],
		AwayScore:   awayScore,
		HomeScore:   homeScore,
		BoxScoreURL: sourceRef,
	}

	tables := doc.Select(`table[id^="box-"][id$="-basic"]`)
	if len(tables) == 0 {
		p.log.Warn("no basic player stats tables found", zap.String("source", sourceRef))
	}
	for _, table := range tables {
		game.Players = append(game.Players, p.extractTeamTable(table, sourceRef)...)
	}

	return game, nil
}

// extractTeamTable parses one per-team basic stats table. The team
// abbreviation is encoded in the table id ("box-MIL-game-basic").
func (p *Parser) extractTeamTable(table page.Element, sourceRef string) []model.PlayerStatLine {
	id, _ := table.Attr("id")
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		p.log.Warn("stats table id not in expected form", zap.String("id", id), zap.String("source", sourceRef))
		return nil
	}
	team := parts[1]

	rows := table.Select("tbody tr")
	if len(rows) == 0 {
		p.log.Warn("no tbody rows in stats table", zap.String("team", team), zap.String("source", sourceRef))
		return nil
	}

	var lines []model.PlayerStatLine
	for _, row := range rows {
		th, ok := row.Find("th", map[string]string{"data-stat": "player"})
		if !ok {
			continue
		}
		a, ok := th.Find("a", nil)
		if !ok {
			// Section headers ("Reserves") and footer rows carry no link.
			if txt := th.Text(); txt != "" && txt != "Reserves" && txt != "Team Totals" {
				p.log.Debug("skipping non-player row", zap.String("row", txt), zap.String("source", sourceRef))
			}
			continue
		}
		playerName := a.Text()

		mp := p.cellText(row, "mp", playerName, sourceRef)
		if mp == "" || nonPlayingStatuses[mp] {
			continue
		}

		lines = append(lines, model.PlayerStatLine{
			PlayerName: playerName,
			Team:       team,
			MP:         mp,
			FG:         p.cellInt(row, "fg", playerName, sourceRef),
			FGA:        p.cellInt(row, "fga", playerName, sourceRef),
			FGPct:      p.cellFloat(row, "fg_pct", playerName, sourceRef),
			FG3:        p.cellInt(row, "fg3", playerName, sourceRef),
			FG3A:       p.cellInt(row, "fg3a", playerName, sourceRef),
			FG3Pct:     p.cellFloat(row, "fg3_pct", playerName, sourceRef),
			FT:         p.cellInt(row, "ft", playerName, sourceRef),
			FTA:        p.cellInt(row, "fta", playerName, sourceRef),
			FTPct:      p.cellFloat(row, "ft_pct", playerName, sourceRef),
			ORB:        p.cellInt(row, "orb", playerName, sourceRef),
			DRB:        p.cellInt(row, "drb", playerName, sourceRef),
			TRB:        p.cellInt(row, "trb", playerName, sourceRef),
			AST:        p.cellInt(row, "ast", playerName, sourceRef),
			STL:        p.cellInt(row, "stl", playerName, sourceRef),
			BLK:        p.cellInt(row, "blk", playerName, sourceRef),
			TOV:        p.cellInt(row, "tov", playerName, sourceRef),
			PF:         p.cellInt(row, "pf", playerName, sourceRef),
			PTS:        p.cellInt(row, "pts", playerName, sourceRef),
			PlusMinus:  p.cellString(row, "plus_minus", playerName, sourceRef),
		})
	}
	return lines
}

// cellText returns the trimmed text of the row's cell for stat, or ""
// when the cell is missing or empty. Missing cells are diagnosed but
// never fatal: a degraded page loses one field, not the whole player.
func (p *Parser) cellText(row page.Element, stat, player, sourceRef string) string {
	cell, ok := row.Find("td", map[string]string{"data-stat": stat})
	if !ok || cell.Text() == "" {
		p.log.Debug("stat not found",
			zap.String("stat", stat),
			zap.String("player", player),
			zap.String("source", sourceRef))
		return ""
	}
	return cell.Text()
}

func (p *Parser) cellString(row page.Element, stat, player, sourceRef string) *string {
	txt := p.cellText(row, stat, player, sourceRef)
	if txt == "" {
		return nil
	}
	return &txt
}

func (p *Parser) cellInt(row page.Element, stat, player, sourceRef string) *int {
	txt := p.cellText(row, stat, player, sourceRef)
	if txt == "" {
		return nil
	}
	n, err := strconv.Atoi(txt)
	if err != nil {
		p.log.Warn("stat value is not an integer",
			zap.String("stat", stat),
			zap.String("value", txt),
			zap.String("player", player),
			zap.String("source", sourceRef))
		return nil
	}
	return &n
}

func (p *Parser) cellFloat(row page.Element, stat, player, sourceRef string) *float64 {
	txt := p.cellText(row, stat, player, sourceRef)
	if txt == "" {
		return nil
	}
	f, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		p.log.Warn("stat value is not a number",
			zap.String("stat", stat),
			zap.String("value", txt),
			zap.String("player", player),
			zap.String("source", sourceRef))
		return nil
	}
	return &f
}
