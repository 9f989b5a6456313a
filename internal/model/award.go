package model

// AwardKind names the monthly award variants. Values double as the
// storage table names.
type AwardKind string

const (
	KindPlayerOfMonth AwardKind = "player_of_the_month"
	KindRookieOfMonth AwardKind = "rookie_of_the_month"
	KindCoachOfMonth  AwardKind = "coach_of_the_month"
)

// MonthlyAward is one resolved row from a monthly award table, before
// it is mapped to a storage record. SeasonStart and League are carried
// so the driver can filter rows; they are not persisted.
type MonthlyAward struct {
	Kind        AwardKind
	EntityName  string
	TeamAbbr    string
	Month       int
	Year        int
	Conference  *string
	League      string
	SeasonStart int
	SourceURL   string
}

// WeeklyAward is one resolved player-of-the-week row. Week bounds are
// ISO dates ("YYYY-MM-DD").
type WeeklyAward struct {
	PlayerName  string
	TeamAbbr    string
	WeekStart   string
	WeekEnd     string
	Conference  *string
	League      string
	SeasonStart int
	SourceURL   string
}

// PlayerOfMonth is the storage row for player-of-the-month awards.
// The natural key excludes the team: a player wins for one team only.
type PlayerOfMonth struct {
	ID               uint    `gorm:"primaryKey"`
	PlayerName       string  `gorm:"uniqueIndex:idx_pom_natural"`
	TeamAbbreviation string  `gorm:"column:team_abbreviation"`
	MonthNumeric     int     `gorm:"column:month_numeric;uniqueIndex:idx_pom_natural"`
	YearNumeric      int     `gorm:"column:year_numeric;uniqueIndex:idx_pom_natural"`
	Conference       *string `gorm:"uniqueIndex:idx_pom_natural"`
	LeagueName       string  `gorm:"column:league_name;uniqueIndex:idx_pom_natural"`
	SourceURL        string  `gorm:"column:source_url"`
}

func (PlayerOfMonth) TableName() string { return string(KindPlayerOfMonth) }

// RookieOfMonth is the storage row for rookie-of-the-month awards.
type RookieOfMonth struct {
	ID               uint    `gorm:"primaryKey"`
	PlayerName       string  `gorm:"uniqueIndex:idx_rom_natural"`
	TeamAbbreviation string  `gorm:"column:team_abbreviation"`
	MonthNumeric     int     `gorm:"column:month_numeric;uniqueIndex:idx_rom_natural"`
	YearNumeric      int     `gorm:"column:year_numeric;uniqueIndex:idx_rom_natural"`
	Conference       *string `gorm:"uniqueIndex:idx_rom_natural"`
	LeagueName       string  `gorm:"column:league_name;uniqueIndex:idx_rom_natural"`
	SourceURL        string  `gorm:"column:source_url"`
}

func (RookieOfMonth) TableName() string { return string(KindRookieOfMonth) }

// CoachOfMonth is the storage row for coach-of-the-month awards. Unlike
// the player variants its natural key includes the team.
type CoachOfMonth struct {
	ID               uint    `gorm:"primaryKey"`
	CoachName        string  `gorm:"column:coach_name;uniqueIndex:idx_com_natural"`
	TeamAbbreviation string  `gorm:"column:team_abbreviation;uniqueIndex:idx_com_natural"`
	MonthNumeric     int     `gorm:"column:month_numeric;uniqueIndex:idx_com_natural"`
	YearNumeric      int     `gorm:"column:year_numeric;uniqueIndex:idx_com_natural"`
	Conference       *string `gorm:"uniqueIndex:idx_com_natural"`
	LeagueName       string  `gorm:"column:league_name;uniqueIndex:idx_com_natural"`
	SourceURL        string  `gorm:"column:source_url"`
}

func (CoachOfMonth) TableName() string { return string(KindCoachOfMonth) }

// PlayerOfWeek is the storage row for player-of-the-week awards.
type PlayerOfWeek struct {
	ID               uint    `gorm:"primaryKey"`
	PlayerName       string  `gorm:"uniqueIndex:idx_pow_natural"`
	TeamAbbreviation string  `gorm:"column:team_abbreviation"`
	WeekStartDate    string  `gorm:"column:week_start_date;uniqueIndex:idx_pow_natural"`
	WeekEndDate      string  `gorm:"column:week_end_date;uniqueIndex:idx_pow_natural"`
	Conference       *string `gorm:"uniqueIndex:idx_pow_natural"`
	LeagueName       string  `gorm:"column:league_name;uniqueIndex:idx_pow_natural"`
	SourceURL        string  `gorm:"column:source_url"`
}

func (PlayerOfWeek) TableName() string { return "player_of_the_week" }
