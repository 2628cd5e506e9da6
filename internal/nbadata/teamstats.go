package nbadata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/reallyasi9/nbapredict/internal/stats"
)

const teamStatsEndpoint = "leaguedashteamstats"

// TeamStats fetches season-to-date advanced team statistics through asOf.
func (c *Client) TeamStats(ctx context.Context, asOf time.Time) ([]byte, error) {
	params := url.Values{
		"Conference":       {""},
		"DateFrom":         {""},
		"DateTo":           {asOf.Format(APIDateLayout)},
		"Division":         {""},
		"GameScope":        {""},
		"GameSegment":      {""},
		"LastNGames":       {"0"},
		"LeagueID":         {"00"},
		"Location":         {""},
		"MeasureType":      {"Advanced"},
		"Month":            {"0"},
		"OpponentTeamID":   {"0"},
		"Outcome":          {""},
		"PORound":          {"0"},
		"PaceAdjust":       {"N"},
		"PerMode":          {"PerGame"},
		"Period":           {"0"},
		"PlayerExperience": {""},
		"PlayerPosition":   {""},
		"PlusMinus":        {"N"},
		"Rank":             {"N"},
		"Season":           {Season(asOf)},
		"SeasonSegment":    {""},
		"SeasonType":       {"Regular Season"},
		"ShotClockRange":   {""},
		"StarterBench":     {""},
		"TeamID":           {"0"},
		"TwoWay":           {"0"},
		"VsConference":     {""},
		"VsDivision":       {""},
	}
	body, err := c.DoRequest(ctx, teamStatsEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("TeamStats: %w", err)
	}
	return body, nil
}

// ParseTeamStats turns an advanced team statistics table into teams with efficiency profiles, sorted by name.
func ParseTeamStats(body []byte) ([]stats.Team, error) {
	resp, err := DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("ParseTeamStats: %w", err)
	}
	rs, err := resp.Set("")
	if err != nil {
		return nil, fmt.Errorf("ParseTeamStats: %w", err)
	}

	rows := rs.Rows()
	teams := make([]stats.Team, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for i, row := range rows {
		team, err := parseTeamStatsRow(row)
		if err != nil {
			return nil, fmt.Errorf("ParseTeamStats: row %d: %w", i, err)
		}
		if _, dup := seen[team.ID]; dup {
			return nil, fmt.Errorf("ParseTeamStats: team %d appears more than once", team.ID)
		}
		seen[team.ID] = struct{}{}
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func parseTeamStatsRow(row Row) (stats.Team, error) {
	var t stats.Team
	var p stats.EfficiencyProfile
	var err error

	if t.ID, err = row.Int("TEAM_ID"); err != nil {
		return t, err
	}
	if t.Name, err = row.String("TEAM_NAME"); err != nil {
		return t, err
	}
	if p.WinningPercentage, err = row.Float("W_PCT"); err != nil {
		return t, err
	}
	if p.OffensiveEfficiency, err = row.Float("OFF_RATING"); err != nil {
		return t, err
	}
	offRank, err := row.Int("OFF_RATING_RANK")
	if err != nil {
		return t, err
	}
	p.OffensiveRank = int(offRank)
	if p.DefensiveEfficiency, err = row.Float("DEF_RATING"); err != nil {
		return t, err
	}
	defRank, err := row.Int("DEF_RATING_RANK")
	if err != nil {
		return t, err
	}
	p.DefensiveRank = int(defRank)

	t.Profile = &p
	return t, nil
}
