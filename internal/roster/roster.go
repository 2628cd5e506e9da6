// Package roster resolves NBA team identifiers to names and abbreviations from a static table.
package roster

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reallyasi9/nbapredict/internal/stats"
)

//go:embed teams.json
var teamsJSON []byte

// InvalidTeamIDError is returned when a team ID is not in the roster.
type InvalidTeamIDError int64

func (e InvalidTeamIDError) Error() string {
	return fmt.Sprintf("invalid team ID specified: %d", int64(e))
}

// UnknownAbbreviationError is returned when an abbreviation is not in the roster.
type UnknownAbbreviationError string

func (e UnknownAbbreviationError) Error() string {
	return fmt.Sprintf("no team with abbreviation %q", string(e))
}

type entry struct {
	TeamID   string `json:"teamId"`
	FullName string `json:"fullName"`
	Tricode  string `json:"tricode"`
}

// Roster is an immutable lookup of teams by ID and abbreviation.
type Roster struct {
	byID     map[int64]stats.Team
	byAbbrev map[string]int64
}

// Default parses the embedded roster.
func Default() (*Roster, error) {
	return Parse(teamsJSON)
}

// Parse builds a Roster from JSON of the form {"teams": [{"teamId", "fullName", "tricode"}]}.
func Parse(b []byte) (*Roster, error) {
	var doc struct {
		Teams []entry `json:"teams"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("Parse: failed to unmarshal roster: %w", err)
	}

	r := &Roster{
		byID:     make(map[int64]stats.Team, len(doc.Teams)),
		byAbbrev: make(map[string]int64, len(doc.Teams)),
	}
	for _, e := range doc.Teams {
		id, err := strconv.ParseInt(e.TeamID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Parse: team %q has non-numeric ID %q: %w", e.FullName, e.TeamID, err)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("Parse: duplicate team ID %d", id)
		}
		abbrev := strings.ToUpper(e.Tricode)
		if other, dup := r.byAbbrev[abbrev]; dup {
			return nil, fmt.Errorf("Parse: abbreviation %s used by teams %d and %d", abbrev, other, id)
		}
		r.byID[id] = stats.Team{ID: id, Name: e.FullName, Abbreviation: abbrev}
		r.byAbbrev[abbrev] = id
	}
	return r, nil
}

// Team returns the identity of a team. The returned team has no efficiency profile.
func (r *Roster) Team(id int64) (stats.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return stats.Team{}, InvalidTeamIDError(id)
	}
	return t, nil
}

// ByAbbreviation finds a team by its tricode, ignoring case.
func (r *Roster) ByAbbreviation(abbrev string) (stats.Team, error) {
	id, ok := r.byAbbrev[strings.ToUpper(strings.TrimSpace(abbrev))]
	if !ok {
		return stats.Team{}, UnknownAbbreviationError(abbrev)
	}
	return r.byID[id], nil
}

// Abbreviation returns the tricode of a team, or the empty string if the ID is unknown.
func (r *Roster) Abbreviation(id int64) string {
	return r.byID[id].Abbreviation
}

// Teams lists every team sorted by name.
func (r *Roster) Teams() []stats.Team {
	out := make([]stats.Team, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
