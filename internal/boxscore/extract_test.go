package boxscore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"brefstats/internal/model"
	"brefstats/internal/page"
)

const testSourceRef = "https://www.basketball-reference.com/boxscores/202310260MIL.html"

func loadFixture(t *testing.T, name string) page.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", name))
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	doc, err := page.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse test fixture: %v", err)
	}
	return doc
}

func parseHTML(t *testing.T, html string) page.Document {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestExtractGame(t *testing.T) {
	doc := loadFixture(t, "box_score.html")
	p := NewParser(zap.NewNop())

	game, err := p.ExtractGame(doc, testSourceRef)
	if err != nil {
		t.Fatalf("ExtractGame failed: %v", err)
	}

	if game.AwayTeam != "Boston Celtics" {
		t.Errorf("expected away team 'Boston Celtics', got %q", game.AwayTeam)
	}
	if game.HomeTeam != "Milwaukee Bucks" {
		t.Errorf("expected home team 'Milwaukee Bucks', got %q", game.HomeTeam)
	}
	if game.AwayScore != 112 || game.HomeScore != 119 {
		t.Errorf("expected scores 112-119, got %d-%d", game.AwayScore, game.HomeScore)
	}
	if game.BoxScoreURL != testSourceRef {
		t.Errorf("expected box score URL %q, got %q", testSourceRef, game.BoxScoreURL)
	}

	if len(game.Players) != 3 {
		t.Fatalf("expected 3 player stat lines, got %d", len(game.Players))
	}

	byName := make(map[string]model.PlayerStatLine)
	for _, line := range game.Players {
		byName[line.PlayerName] = line
	}

	tatum, ok := byName["Jayson Tatum"]
	if !ok {
		t.Fatal("expected a stat line for Jayson Tatum")
	}
	if tatum.Team != "BOS" {
		t.Errorf("expected Tatum team 'BOS', got %q", tatum.Team)
	}
	if tatum.MP != "36:30" {
		t.Errorf("expected Tatum mp '36:30', got %q", tatum.MP)
	}
	if tatum.FG == nil || *tatum.FG != 10 {
		t.Errorf("expected Tatum fg 10, got %v", tatum.FG)
	}
	if tatum.FGPct == nil || *tatum.FGPct != 0.5 {
		t.Errorf("expected Tatum fg_pct 0.5, got %v", tatum.FGPct)
	}
	if tatum.PTS == nil || *tatum.PTS != 29 {
		t.Errorf("expected Tatum pts 29, got %v", tatum.PTS)
	}
	if tatum.PlusMinus == nil || *tatum.PlusMinus != "-7" {
		t.Errorf("expected Tatum plus_minus '-7', got %v", tatum.PlusMinus)
	}

	giannis, ok := byName["Giannis Antetokounmpo"]
	if !ok {
		t.Fatal("expected a stat line for Giannis Antetokounmpo")
	}
	if giannis.Team != "MIL" {
		t.Errorf("expected Giannis team 'MIL', got %q", giannis.Team)
	}
}

func TestExtractGameAbsentFields(t *testing.T) {
	doc := loadFixture(t, "box_score.html")
	p := NewParser(zap.NewNop())

	game, err := p.ExtractGame(doc, testSourceRef)
	if err != nil {
		t.Fatalf("ExtractGame failed: %v", err)
	}

	var pritchard *model.PlayerStatLine
	for i := range game.Players {
		if game.Players[i].PlayerName == "Payton Pritchard" {
			pritchard = &game.Players[i]
		}
	}
	if pritchard == nil {
		t.Fatal("expected a stat line for Payton Pritchard")
	}

	// Empty cell: absent, not zero.
	if pritchard.FTPct != nil {
		t.Errorf("expected absent ft_pct for empty cell, got %v", *pritchard.FTPct)
	}
	if pritchard.ORB != nil {
		t.Errorf("expected absent orb for empty cell, got %v", *pritchard.ORB)
	}
	// Missing cell entirely.
	if pritchard.TOV != nil {
		t.Errorf("expected absent tov for missing cell, got %v", *pritchard.TOV)
	}
	// Non-numeric content.
	if pritchard.AST != nil {
		t.Errorf("expected absent ast for non-numeric cell, got %v", *pritchard.AST)
	}
	// Fields that were present still parse.
	if pritchard.FT == nil || *pritchard.FT != 0 {
		t.Errorf("expected ft 0, got %v", pritchard.FT)
	}
	if pritchard.PlusMinus == nil || *pritchard.PlusMinus != "+4" {
		t.Errorf("expected plus_minus '+4', got %v", pritchard.PlusMinus)
	}
}

func TestExtractGameSkipsNonParticipants(t *testing.T) {
	doc := loadFixture(t, "box_score.html")
	p := NewParser(zap.NewNop())

	game, err := p.ExtractGame(doc, testSourceRef)
	if err != nil {
		t.Fatalf("ExtractGame failed: %v", err)
	}

	for _, line := range game.Players {
		if line.PlayerName == "Derrick White" {
			t.Error("expected no stat line for 'Did Not Play' player")
		}
		if line.PlayerName == "Chris Livingston" {
			t.Error("expected no stat line for 'Inactive' player")
		}
	}
}

func TestExtractGameDeterministic(t *testing.T) {
	doc := loadFixture(t, "box_score.html")
	p := NewParser(zap.NewNop())

	first, err := p.ExtractGame(doc, testSourceRef)
	if err != nil {
		t.Fatalf("ExtractGame failed: %v", err)
	}
	second, err := p.ExtractGame(doc, testSourceRef)
	if err != nil {
		t.Fatalf("ExtractGame failed on second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical records from re-running extraction on the same document")
	}
}

func TestExtractGameRejections(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantErr error
	}{
		{
			name:    "no score region",
			html:    `<html><body><div class="content">nothing here</div></body></html>`,
			wantErr: ErrNoScoreRegion,
		},
		{
			name: "one team name",
			html: `<html><body><div class="scorebox">
				<strong><a href="/t/BOS.html">Boston Celtics</a></strong>
				<div class="score">112</div><div class="score">119</div>
				</div></body></html>`,
			wantErr: ErrTeamNames,
		},
		{
			name: "one score",
			html: `<html><body><div class="scorebox">
				<strong>Boston Celtics</strong><strong>Milwaukee Bucks</strong>
				<div class="score">112</div>
				</div></body></html>`,
			wantErr: ErrScores,
		},
		{
			name: "non-numeric score",
			html: `<html><body><div class="scorebox">
				<strong>Boston Celtics</strong><strong>Milwaukee Bucks</strong>
				<div class="score">112</div><div class="score">PPD</div>
				</div></body></html>`,
			wantErr: ErrScores,
		},
	}

	p := NewParser(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, tt.html)
			game, err := p.ExtractGame(doc, testSourceRef)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if game != nil {
				t.Error("expected no game record on rejection")
			}
		})
	}
}

func TestExtractGameNilDocument(t *testing.T) {
	p := NewParser(zap.NewNop())
	if _, err := p.ExtractGame(nil, testSourceRef); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
}
