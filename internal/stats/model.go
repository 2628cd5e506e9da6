package stats

import (
	"time"
)

// EfficiencyProfile is a team's season-to-date efficiency as of a given date.
type EfficiencyProfile struct {
	// WinningPercentage is the fraction of games won, from 0 to 1.
	WinningPercentage float64 `json:"winningPercentage" firestore:"winning_percentage"`

	// OffensiveEfficiency is points scored per 100 possessions.
	OffensiveEfficiency float64 `json:"offensiveEfficiency" firestore:"offensive_efficiency"`

	// OffensiveRank is the league rank of OffensiveEfficiency (1 is best).
	OffensiveRank int `json:"offensiveRank" firestore:"offensive_rank"`

	// DefensiveEfficiency is points allowed per 100 possessions. Lower is better.
	DefensiveEfficiency float64 `json:"defensiveEfficiency" firestore:"defensive_efficiency"`

	// DefensiveRank is the league rank of DefensiveEfficiency (1 is best).
	DefensiveRank int `json:"defensiveRank" firestore:"defensive_rank"`
}

// Team is an NBA franchise, optionally carrying its efficiency profile as of some date.
type Team struct {
	ID           int64              `json:"teamId" firestore:"team_id"`
	Name         string             `json:"teamName" firestore:"team_name"`
	Abbreviation string             `json:"abbreviation" firestore:"abbreviation"`
	Profile      *EfficiencyProfile `json:"advancedStats,omitempty" firestore:"advanced_stats,omitempty"`
}

// RawGameTeam is one side of a final score as reported by the stats provider.
type RawGameTeam struct {
	TeamID       int64  `json:"teamId"`
	Name         string `json:"teamName"`
	Abbreviation string `json:"abbreviation"`
	Points       int    `json:"pointsScored"`
	WonGame      bool   `json:"wonGame"`
}

// RawGame is a final score before any efficiency data is attached.
type RawGame struct {
	GameID string      `json:"gameId"`
	Date   time.Time   `json:"datePlayed"`
	Home   RawGameTeam `json:"homeTeam"`
	Away   RawGameTeam `json:"awayTeam"`
}

// GameTeam is a team's line in one game along with its profile as of the game date.
type GameTeam struct {
	Team
	Points  int  `json:"pointsScored"`
	WonGame bool `json:"wonGame"`
}

// EnrichedGame is a final score with both teams' efficiency profiles attached.
type EnrichedGame struct {
	GameID string    `json:"gameId"`
	Home   GameTeam  `json:"homeTeam"`
	Away   GameTeam  `json:"awayTeam"`
	Date   time.Time `json:"datePlayed"`

	// Characteristics is nil until Derive has been called on the game.
	Characteristics *WinningCharacteristics `json:"winningCharacteristics,omitempty"`
}

// Winner returns the side that won and the side that lost.
// It does not check the game's integrity; see Derive.
func (g EnrichedGame) Winner() (winner GameTeam, loser GameTeam) {
	if g.Home.WonGame {
		return g.Home, g.Away
	}
	return g.Away, g.Home
}

// WinningCharacteristics describe how the winner of a single game won.
// Every gap is oriented so that a positive value favors the winner.
type WinningCharacteristics struct {
	WasHomeTeam bool `json:"wasHomeTeam" firestore:"was_home_team"`

	MoreOffensivelyEfficient bool    `json:"moreOffensivelyEfficient" firestore:"more_offensively_efficient"`
	OffensiveEfficiencyGap   float64 `json:"offensiveEfficiencyGap" firestore:"offensive_efficiency_gap"`

	MoreDefensivelyEfficient bool    `json:"moreDefensivelyEfficient" firestore:"more_defensively_efficient"`
	DefensiveEfficiencyGap   float64 `json:"defensiveEfficiencyGap" firestore:"defensive_efficiency_gap"`

	HadHigherWinningPercentage bool    `json:"hadHigherWinningPercentage" firestore:"had_higher_winning_percentage"`
	WinningPercentageGap       float64 `json:"winningPercentageGap" firestore:"winning_percentage_gap"`

	PointGap int `json:"pointGap" firestore:"point_gap"`
}

// CharacteristicRates aggregate WinningCharacteristics over a window of games.
type CharacteristicRates struct {
	WasHomeTeam                float64 `json:"wasHomeTeam" firestore:"was_home_team"`
	MoreOffensivelyEfficient   float64 `json:"moreOffensivelyEfficient" firestore:"more_offensively_efficient"`
	MoreDefensivelyEfficient   float64 `json:"moreDefensivelyEfficient" firestore:"more_defensively_efficient"`
	HadHigherWinningPercentage float64 `json:"hadHigherWinningPercentage" firestore:"had_higher_winning_percentage"`
	AveragePointGap            float64 `json:"averagePointGap" firestore:"average_point_gap"`
}

// GameWindow is a date range of games, possibly filtered by similarity, with optional aggregate rates.
type GameWindow struct {
	From  time.Time      `json:"fromDate"`
	To    time.Time      `json:"toDate"`
	Games []EnrichedGame `json:"boxScores"`

	// GameCount is the number of games the rates were computed over.
	// It survives stripping Games from a report.
	GameCount int `json:"gameCount"`

	Rates *CharacteristicRates `json:"winningCharacteristics,omitempty"`

	// ComparisonRange is the similarity tolerance used to select Games, if any.
	ComparisonRange *float64 `json:"comparisonRange,omitempty"`
}

// StatGap is a team's advantage over a specific opponent.
// Positive values always mean the team is better.
type StatGap struct {
	WinningPercentage   float64 `json:"winningPercentage" firestore:"winning_percentage"`
	OffensiveEfficiency float64 `json:"offensiveEfficiency" firestore:"offensive_efficiency"`
	OffensiveRank       int     `json:"offensiveRank" firestore:"offensive_rank"`
	DefensiveEfficiency float64 `json:"defensiveEfficiency" firestore:"defensive_efficiency"`
	DefensiveRank       int     `json:"defensiveRank" firestore:"defensive_rank"`
}

// MatchupPredictors are the similarity windows built for one team ahead of one game.
type MatchupPredictors struct {
	TeamID              int64      `json:"teamId"`
	Gap                 StatGap    `json:"statGaps"`
	WinningPercentage   GameWindow `json:"winningPercentage"`
	OffensiveEfficiency GameWindow `json:"offensiveEfficiency"`
	DefensiveEfficiency GameWindow `json:"defensiveEfficiency"`
}

// Window returns the predictor window for a dimension.
func (m MatchupPredictors) Window(d Dimension) GameWindow {
	switch d {
	case OffensiveEfficiencyDimension:
		return m.OffensiveEfficiency
	case DefensiveEfficiencyDimension:
		return m.DefensiveEfficiency
	default:
		return m.WinningPercentage
	}
}

// Tolerances are the per-dimension similarity bands.
type Tolerances struct {
	WinningPercentage   float64 `json:"winningPercentage" firestore:"winning_percentage"`
	OffensiveEfficiency float64 `json:"offensiveEfficiency" firestore:"offensive_efficiency"`
	DefensiveEfficiency float64 `json:"defensiveEfficiency" firestore:"defensive_efficiency"`
}

// DefaultTolerances are the bands used when none are configured.
var DefaultTolerances = Tolerances{
	WinningPercentage:   0.05,
	OffensiveEfficiency: 0.5,
	DefensiveEfficiency: 0.5,
}
