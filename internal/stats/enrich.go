package stats

import (
	"fmt"
	"time"
)

// ProfileResolver looks up a team's efficiency profile as of a date.
type ProfileResolver interface {
	ResolveProfile(teamID int64, date time.Time) (EfficiencyProfile, error)
}

// Profiles is a ProfileResolver over a single as-of date, keyed by team ID.
type Profiles map[int64]EfficiencyProfile

// NewProfiles indexes the profiles of teams. Teams without a profile are skipped.
func NewProfiles(teams []Team) Profiles {
	p := make(Profiles, len(teams))
	for _, t := range teams {
		if t.Profile == nil {
			continue
		}
		p[t.ID] = *t.Profile
	}
	return p
}

// ResolveProfile implements ProfileResolver.
func (p Profiles) ResolveProfile(teamID int64, date time.Time) (EfficiencyProfile, error) {
	profile, ok := p[teamID]
	if !ok {
		return EfficiencyProfile{}, &MissingTeamStatsError{TeamID: teamID, Date: date}
	}
	return profile, nil
}

// Enrich attaches each side's efficiency profile as of the game date to a raw final score.
func Enrich(raw RawGame, profiles ProfileResolver) (EnrichedGame, error) {
	home, err := enrichTeam(raw.Home, raw.Date, profiles)
	if err != nil {
		return EnrichedGame{}, fmt.Errorf("Enrich: home team of game %s: %w", raw.GameID, err)
	}
	away, err := enrichTeam(raw.Away, raw.Date, profiles)
	if err != nil {
		return EnrichedGame{}, fmt.Errorf("Enrich: away team of game %s: %w", raw.GameID, err)
	}
	return EnrichedGame{
		GameID: raw.GameID,
		Home:   home,
		Away:   away,
		Date:   raw.Date,
	}, nil
}

func enrichTeam(raw RawGameTeam, date time.Time, profiles ProfileResolver) (GameTeam, error) {
	profile, err := profiles.ResolveProfile(raw.TeamID, date)
	if err != nil {
		return GameTeam{}, err
	}
	return GameTeam{
		Team: Team{
			ID:           raw.TeamID,
			Name:         raw.Name,
			Abbreviation: raw.Abbreviation,
			Profile:      &profile,
		},
		Points:  raw.Points,
		WonGame: raw.WonGame,
	}, nil
}

// EnrichAndDerive enriches a raw final score and derives its winning characteristics.
func EnrichAndDerive(raw RawGame, profiles ProfileResolver) (EnrichedGame, error) {
	game, err := Enrich(raw, profiles)
	if err != nil {
		return EnrichedGame{}, err
	}
	if err := Derive(&game); err != nil {
		return EnrichedGame{}, err
	}
	return game, nil
}
