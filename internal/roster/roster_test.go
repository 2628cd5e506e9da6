package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	lakers, err := r.Team(1610612747)
	require.NoError(t, err)
	assert.Equal(t, "Los Angeles Lakers", lakers.Name)
	assert.Equal(t, "LAL", lakers.Abbreviation)
	assert.Nil(t, lakers.Profile)

	assert.Equal(t, "BOS", r.Abbreviation(1610612738))
	assert.Equal(t, "", r.Abbreviation(1))

	teams := r.Teams()
	require.Len(t, teams, 30)
	assert.Equal(t, "Atlanta Hawks", teams[0].Name)
	assert.Equal(t, "Washington Wizards", teams[len(teams)-1].Name)
}

func TestTeamInvalidID(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	_, err = r.Team(42)
	var invalid InvalidTeamIDError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, InvalidTeamIDError(42), invalid)
	assert.Equal(t, "invalid team ID specified: 42", err.Error())
}

func TestByAbbreviation(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	den, err := r.ByAbbreviation(" den ")
	require.NoError(t, err)
	assert.Equal(t, int64(1610612743), den.ID)

	_, err = r.ByAbbreviation("XYZ")
	assert.ErrorIs(t, err, UnknownAbbreviationError("XYZ"))
}

func TestParseRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate id", `{"teams":[{"teamId":"1","fullName":"A","tricode":"AAA"},{"teamId":"1","fullName":"B","tricode":"BBB"}]}`},
		{"duplicate tricode", `{"teams":[{"teamId":"1","fullName":"A","tricode":"AAA"},{"teamId":"2","fullName":"B","tricode":"aaa"}]}`},
		{"bad id", `{"teams":[{"teamId":"one","fullName":"A","tricode":"AAA"}]}`},
		{"bad json", `{"teams":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
