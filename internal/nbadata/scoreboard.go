package nbadata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"
)

const scoreboardEndpoint = "scoreboardV2"

// ScheduledGame is a game on a day's schedule.
type ScheduledGame struct {
	GameID     string    `json:"gameId" firestore:"game_id"`
	Date       time.Time `json:"gameDate" firestore:"game_date"`
	HomeTeamID int64     `json:"homeTeamId" firestore:"home_team_id"`
	AwayTeamID int64     `json:"awayTeamId" firestore:"away_team_id"`
}

// Scoreboard fetches the schedule for a single day.
func (c *Client) Scoreboard(ctx context.Context, day time.Time) ([]byte, error) {
	params := url.Values{
		"DayOffset": {"0"},
		"LeagueID":  {"00"},
		"gameDate":  {day.Format(APIDateLayout)},
	}
	body, err := c.DoRequest(ctx, scoreboardEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("Scoreboard: %w", err)
	}
	return body, nil
}

// ParseScoreboard reads the GameHeader table of a scoreboard. Games are sorted by ID.
func ParseScoreboard(body []byte, day time.Time) ([]ScheduledGame, error) {
	resp, err := DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("ParseScoreboard: %w", err)
	}
	rs, err := resp.Set("GameHeader")
	if err != nil {
		return nil, fmt.Errorf("ParseScoreboard: %w", err)
	}

	rows := rs.Rows()
	games := make([]ScheduledGame, 0, len(rows))
	for i, row := range rows {
		g := ScheduledGame{Date: Day(day)}
		if g.GameID, err = row.String("GAME_ID"); err != nil {
			return nil, fmt.Errorf("ParseScoreboard: row %d: %w", i, err)
		}
		if g.HomeTeamID, err = row.Int("HOME_TEAM_ID"); err != nil {
			return nil, fmt.Errorf("ParseScoreboard: row %d: %w", i, err)
		}
		if g.AwayTeamID, err = row.Int("VISITOR_TEAM_ID"); err != nil {
			return nil, fmt.Errorf("ParseScoreboard: row %d: %w", i, err)
		}
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameID < games[j].GameID })
	return games, nil
}
