package matchups

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/firestore"
	"github.com/reallyasi9/nbapredict/internal/tools/render"
)

// ErrNoGames is returned when there is nothing scheduled to predict.
var ErrNoGames = errors.New("no games scheduled")

// Predict builds the matchup report for ctx.GameID on ctx.Date, asking which game to use if
// no game ID was given, then prints it and optionally saves it to Firestore.
// ctx.GameID may also be the tricode of a team playing that day.
func Predict(ctx *Context) error {
	gameID := ctx.GameID
	if gameID != "" && !isGameID(gameID) {
		m, err := ctx.Service.TeamMatchup(ctx, ctx.Date, gameID)
		if err != nil {
			return fmt.Errorf("Predict: %w", err)
		}
		gameID = m.GameID
	}
	if gameID == "" {
		matchups, err := ctx.Service.Matchups(ctx, ctx.Date)
		if err != nil {
			return fmt.Errorf("Predict: failed to get matchups: %w", err)
		}
		if len(matchups) == 0 {
			return fmt.Errorf("Predict: %s: %w", ctx.Date.Format("2006-01-02"), ErrNoGames)
		}
		m, err := ctx.Choose(matchups)
		if err != nil {
			return fmt.Errorf("Predict: failed to choose a game: %w", err)
		}
		gameID = m.GameID
	}

	report, err := ctx.Service.MatchupReport(ctx, ctx.Date, gameID, ctx.Days, ctx.Predictor)
	if err != nil {
		return fmt.Errorf("Predict: %w", err)
	}
	ctx.Logger.Infow("built matchup report", "gameID", gameID, "home", report.Home.Team.Abbreviation, "away", report.Away.Team.Abbreviation)

	if err := printReport(ctx, report); err != nil {
		return fmt.Errorf("Predict: %w", err)
	}

	if ctx.Save {
		if err := save(ctx, report); err != nil {
			return fmt.Errorf("Predict: %w", err)
		}
	}
	return nil
}

// isGameID reports whether id looks like a league game ID rather than a team tricode.
func isGameID(id string) bool {
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func printReport(ctx *Context, report data.Report) error {
	if !ctx.JSON {
		render.WriteReport(ctx.Output, report)
		return nil
	}
	enc := json.NewEncoder(ctx.Output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func save(ctx *Context, report data.Report) error {
	p := firestore.NewPrediction(report)
	if ctx.DryRun {
		fmt.Fprintf(ctx.Output, "DRY RUN: would write prediction:\n%s\n", p)
		return nil
	}
	if ctx.FirestoreClient == nil {
		return errors.New("no Firestore client configured")
	}
	ref, err := firestore.WritePrediction(ctx, ctx.FirestoreClient, p, ctx.Force)
	if err != nil {
		return err
	}
	ctx.Logger.Infow("saved prediction", "path", ref.Path)
	return nil
}

// SurveyMatchup asks on the terminal which of the matchups to use.
func SurveyMatchup(matchups []data.Matchup) (data.Matchup, error) {
	options := make([]string, len(matchups))
	for i, m := range matchups {
		options[i] = fmt.Sprintf("%s @ %s (%s)", m.Away.Name, m.Home.Name, m.GameID)
	}
	q := &survey.Select{
		Message: "Which game do you want to predict?",
		Options: options,
	}
	var i int
	if err := survey.AskOne(q, &i); err != nil {
		return data.Matchup{}, err
	}
	return matchups[i], nil
}
