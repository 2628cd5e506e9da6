package nbadata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/reallyasi9/nbapredict/internal/stats"
)

const boxScoreEndpoint = "leaguegamelog"

// BoxScores fetches the raw team game log for every game played between from and to, inclusive.
func (c *Client) BoxScores(ctx context.Context, from, to time.Time) ([]byte, error) {
	params := url.Values{
		"Counter":      {"1000"},
		"DateFrom":     {from.Format(APIDateLayout)},
		"DateTo":       {to.Format(APIDateLayout)},
		"Direction":    {"DESC"},
		"LeagueID":     {"00"},
		"PlayerOrTeam": {"T"},
		"Season":       {Season(to)},
		"SeasonType":   {"Regular Season"},
		"Sorter":       {"DATE"},
	}
	body, err := c.DoRequest(ctx, boxScoreEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("BoxScores: %w", err)
	}
	return body, nil
}

type boxScoreLine struct {
	gameID string
	date   time.Time
	away   bool
	team   stats.RawGameTeam
}

// ParseBoxScores turns a team game log into final scores, two lines per game.
// A game whose second line is missing is an error, as is a game with two home or two away lines.
// Games are returned sorted by date and then game ID.
func ParseBoxScores(body []byte) ([]stats.RawGame, error) {
	resp, err := DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("ParseBoxScores: %w", err)
	}
	rs, err := resp.Set("")
	if err != nil {
		return nil, fmt.Errorf("ParseBoxScores: %w", err)
	}

	byGame := make(map[string][]boxScoreLine)
	for i, row := range rs.Rows() {
		line, err := parseBoxScoreLine(row)
		if err != nil {
			return nil, fmt.Errorf("ParseBoxScores: row %d: %w", i, err)
		}
		byGame[line.gameID] = append(byGame[line.gameID], line)
	}

	games := make([]stats.RawGame, 0, len(byGame))
	for id, lines := range byGame {
		if len(lines) != 2 {
			return nil, fmt.Errorf("ParseBoxScores: game %s has %d lines, expected 2", id, len(lines))
		}
		if lines[0].away == lines[1].away {
			return nil, fmt.Errorf("ParseBoxScores: game %s does not have one home and one away line", id)
		}
		home, away := lines[0], lines[1]
		if home.away {
			home, away = away, home
		}
		games = append(games, stats.RawGame{
			GameID: id,
			Date:   home.date,
			Home:   home.team,
			Away:   away.team,
		})
	}

	sort.Slice(games, func(i, j int) bool {
		if !games[i].Date.Equal(games[j].Date) {
			return games[i].Date.Before(games[j].Date)
		}
		return games[i].GameID < games[j].GameID
	})
	return games, nil
}

func parseBoxScoreLine(row Row) (boxScoreLine, error) {
	var line boxScoreLine
	var err error

	if line.gameID, err = row.String("GAME_ID"); err != nil {
		return line, err
	}
	dateString, err := row.String("GAME_DATE")
	if err != nil {
		return line, err
	}
	if line.date, err = time.Parse(gameDateLayout, dateString); err != nil {
		return line, fmt.Errorf("game %s: unparsable date: %w", line.gameID, err)
	}
	matchup, err := row.String("MATCHUP")
	if err != nil {
		return line, err
	}
	line.away = strings.Contains(matchup, "@")

	if line.team.TeamID, err = row.Int("TEAM_ID"); err != nil {
		return line, err
	}
	if line.team.Name, err = row.String("TEAM_NAME"); err != nil {
		return line, err
	}
	if line.team.Abbreviation, err = row.String("TEAM_ABBREVIATION"); err != nil {
		return line, err
	}
	points, err := row.Int("PTS")
	if err != nil {
		return line, err
	}
	line.team.Points = int(points)
	wl, err := row.String("WL")
	if err != nil {
		return line, err
	}
	line.team.WonGame = wl == "W"
	return line, nil
}
