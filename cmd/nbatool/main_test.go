package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogLevel(t *testing.T) {
	g := &globalCmd{LogLevel: "debug"}
	require.NoError(t, g.AfterApply())
	assert.True(t, g.Logger().Desugar().Core().Enabled(zapcore.DebugLevel))

	g = &globalCmd{LogLevel: "loud"}
	assert.ErrorContains(t, g.AfterApply(), "invalid log level 'loud'")
}

func TestLogLevelFlagRejectsUnknown(t *testing.T) {
	var cli struct {
		globalCmd
		Games struct {
			Ls lsGamesCmd `cmd:""`
		} `cmd:""`
	}
	parser, err := kong.New(&cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--log-level", "loud", "games", "ls", "20200128"})
	assert.Error(t, err)

	_, err = parser.Parse([]string{"--log-level", "warn", "games", "ls", "2020-01-28", "--days", "3"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cli.LogLevel)
	assert.True(t, time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC).Equal(cli.Games.Ls.Date.Time))
	assert.Equal(t, 3, cli.Games.Ls.Days)
}
