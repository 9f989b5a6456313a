package model

// Game is one finished game extracted from a box score page. The box
// score URL is the natural key; re-scraping the same page is a no-op
// at the sink.
type Game struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	GameDate    string `json:"game_date" gorm:"column:game_date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	BoxScoreURL string `json:"box_score_url" gorm:"column:box_score_url;uniqueIndex"`

	Players []PlayerStatLine `json:"players,omitempty" gorm:"foreignKey:GameID"`
}

func (Game) TableName() string { return "games" }

// PlayerStatLine is one player's row from a per-team basic stats table.
// Counts and percentages are pointers: a nil value means the cell was
// missing or unreadable, which is not the same as zero. Minutes and
// plus/minus stay raw text ("35:12", "+5").
type PlayerStatLine struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	GameID     uint     `json:"game_id" gorm:"index"`
	PlayerName string   `json:"player_name"`
	Team       string   `json:"team"`
	MP         string   `json:"mp" gorm:"column:mp"`
	FG         *int     `json:"fg,omitempty" gorm:"column:fg"`
	FGA        *int     `json:"fga,omitempty" gorm:"column:fga"`
	FGPct      *float64 `json:"fg_pct,omitempty" gorm:"column:fg_pct"`
	FG3        *int     `json:"fg3,omitempty" gorm:"column:fg3"`
	FG3A       *int     `json:"fg3a,omitempty" gorm:"column:fg3a"`
	FG3Pct     *float64 `json:"fg3_pct,omitempty" gorm:"column:fg3_pct"`
	FT         *int     `json:"ft,omitempty" gorm:"column:ft"`
	FTA        *int     `json:"fta,omitempty" gorm:"column:fta"`
	FTPct      *float64 `json:"ft_pct,omitempty" gorm:"column:ft_pct"`
	ORB        *int     `json:"orb,omitempty" gorm:"column:orb"`
	DRB        *int     `json:"drb,omitempty" gorm:"column:drb"`
	TRB        *int     `json:"trb,omitempty" gorm:"column:trb"`
	AST        *int     `json:"ast,omitempty" gorm:"column:ast"`
	STL        *int     `json:"stl,omitempty" gorm:"column:stl"`
	BLK        *int     `json:"blk,omitempty" gorm:"column:blk"`
	TOV        *int     `json:"tov,omitempty" gorm:"column:tov"`
	PF         *int     `json:"pf,omitempty" gorm:"column:pf"`
	PTS        *int     `json:"pts,omitempty" gorm:"column:pts"`
	PlusMinus  *string  `json:"plus_minus,omitempty" gorm:"column:plus_minus"`
}

func (PlayerStatLine) TableName() string { return "player_stats" }
