package main

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
	"github.com/reallyasi9/nbapredict/internal/roster"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

// date is a calendar day given as YYYYMMDD or YYYY-MM-DD.
type date struct {
	time.Time
}

func (d *date) UnmarshalText(b []byte) error {
	t, err := nbadata.ParseDate(string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type globalCmd struct {
	Store     string `help:"Where downloaded data is kept: a local directory or a gs://bucket/prefix URL." env:"NBA_STORE" default:"./data"`
	ProjectID string `help:"GCP project ID, needed to save predictions." name:"project" env:"GCP_PROJECT"`
	DryRun    bool   `help:"Print writes to the console instead of storing them." xor:"mode"`
	Force     bool   `help:"Overwrite data that already exists." xor:"mode"`
	LogLevel  string `help:"Log level." default:"info" enum:"debug,info,warn,error" env:"NBA_LOG_LEVEL"`

	logger *zap.SugaredLogger
}

// AfterApply builds the logger once flags are parsed.
func (g *globalCmd) AfterApply() error {
	level, err := zapcore.ParseLevel(g.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", g.LogLevel, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("unable to build logger: %w", err)
	}
	g.logger = logger.Sugar()
	return nil
}

func (g *globalCmd) Logger() *zap.SugaredLogger {
	if g.logger == nil {
		return zap.NewNop().Sugar()
	}
	return g.logger
}

func (g *globalCmd) openStore(ctx context.Context) (blobstore.Store, error) {
	store, err := blobstore.Open(ctx, g.Store)
	if err != nil {
		return nil, fmt.Errorf("unable to open store %s: %w", g.Store, err)
	}
	return store, nil
}

func (g *globalCmd) newService(ctx context.Context) (*data.Service, *roster.Roster, func() error, error) {
	store, err := g.openStore(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	r, err := roster.Default()
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return data.New(store, r, g.Logger()), r, store.Close, nil
}

func (g *globalCmd) firestoreClient(ctx context.Context) (*fs.Client, error) {
	if g.ProjectID == "" {
		return nil, fmt.Errorf("a GCP project ID is required: set --project or GCP_PROJECT")
	}
	return fs.NewClient(ctx, g.ProjectID)
}

// predictorFlags are shared by every command that builds matchup reports.
type predictorFlags struct {
	Days      int     `help:"Days of history to compare against." default:"30"`
	TolWinPct float64 `help:"Winning percentage similarity tolerance." default:"0.05" name:"tol-win-pct"`
	TolOffEff float64 `help:"Offensive efficiency similarity tolerance." default:"0.5" name:"tol-off-eff"`
	TolDefEff float64 `help:"Defensive efficiency similarity tolerance." default:"0.5" name:"tol-def-eff"`
}

func (p predictorFlags) predictor(includeGames bool) stats.Predictor {
	return stats.Predictor{
		Tolerances: stats.Tolerances{
			WinningPercentage:   p.TolWinPct,
			OffensiveEfficiency: p.TolOffEff,
			DefensiveEfficiency: p.TolDefEff,
		},
		IncludeGames: includeGames,
	}
}

var CLI struct {
	globalCmd

	Fetch struct {
		BoxScores fetchBoxScoresCmd `cmd:"" help:"Download final scores."`
		TeamStats fetchTeamStatsCmd `cmd:"" help:"Download advanced team statistics."`
		Matchups  fetchMatchupsCmd  `cmd:"" help:"Download schedules."`
	} `cmd:"" help:"Download data from stats.nba.com into the store."`

	Teams struct {
		Ls lsTeamsCmd `cmd:"" help:"List teams."`
	} `cmd:""`

	Games struct {
		Ls lsGamesCmd `cmd:"" help:"Summarize how the winners of past games won."`
	} `cmd:""`

	Matchups struct {
		Ls      lsMatchupsCmd `cmd:"" help:"List the games scheduled on a day."`
		Predict predictCmd    `cmd:"" help:"Build the predictors for a scheduled game."`
	} `cmd:""`

	Predictions struct {
		Ls lsPredictionsCmd `cmd:"" help:"Show the predictions saved to Firestore for a day."`
	} `cmd:""`

	Export exportCmd `cmd:"" help:"Write the predictors of every game on a day to an Excel workbook."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("nbatool"),
		kong.Description("A command-line tool for NBA matchup predictors."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&CLI.globalCmd)
	if CLI.logger != nil {
		CLI.logger.Sync()
	}
	ctx.FatalIfErrorf(err)
}
