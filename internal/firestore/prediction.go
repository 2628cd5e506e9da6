package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

const PREDICTIONS_COLLECTION = "predictions"
const GAMES_COLLECTION = "games"

const dateLayout = "2006-01-02"

// Window is a summarized predictor window as stored in Firestore.
type Window struct {
	// From and To bound the days of history the window was drawn from.
	From time.Time `firestore:"from"`
	To   time.Time `firestore:"to"`

	// GameCount is the number of past games that were similar enough to count.
	GameCount int `firestore:"game_count"`

	// Rates are how often the winners of those games had each characteristic.
	Rates stats.CharacteristicRates `firestore:"rates"`

	// ComparisonRange is the similarity tolerance used to select the games.
	ComparisonRange float64 `firestore:"comparison_range"`
}

// TeamPrediction is one side of a stored matchup prediction.
type TeamPrediction struct {
	Team                stats.Team    `firestore:"team"`
	Gap                 stats.StatGap `firestore:"gap"`
	WinningPercentage   Window        `firestore:"winning_percentage"`
	OffensiveEfficiency Window        `firestore:"offensive_efficiency"`
	DefensiveEfficiency Window        `firestore:"defensive_efficiency"`
}

// Prediction is the stored predictor report for one scheduled game.
type Prediction struct {
	// GameID is the league's identifier of the scheduled game. It is also the document ID.
	GameID string `firestore:"game_id"`

	// Date is the day the game is scheduled.
	Date time.Time `firestore:"date"`

	// DaysOfHistory is how many days before Date the predictor games were drawn from.
	DaysOfHistory int `firestore:"days_of_history"`

	// Tolerances are the similarity bands used.
	Tolerances stats.Tolerances `firestore:"tolerances"`

	Home TeamPrediction `firestore:"home"`
	Away TeamPrediction `firestore:"away"`

	// Timestamp is the time the prediction was written to Firestore.
	Timestamp time.Time `firestore:"timestamp,serverTimestamp"`
}

func newWindow(w stats.GameWindow) Window {
	out := Window{From: w.From, To: w.To, GameCount: w.GameCount}
	if w.Rates != nil {
		out.Rates = *w.Rates
	}
	if w.ComparisonRange != nil {
		out.ComparisonRange = *w.ComparisonRange
	}
	return out
}

func newTeamPrediction(r data.TeamReport) TeamPrediction {
	return TeamPrediction{
		Team:                r.Team,
		Gap:                 r.Gap,
		WinningPercentage:   newWindow(r.Predictors.WinningPercentage),
		OffensiveEfficiency: newWindow(r.Predictors.OffensiveEfficiency),
		DefensiveEfficiency: newWindow(r.Predictors.DefensiveEfficiency),
	}
}

// NewPrediction flattens a matchup report for storage. Matched games are not stored.
func NewPrediction(r data.Report) Prediction {
	return Prediction{
		GameID:        r.GameID,
		Date:          r.Date,
		DaysOfHistory: r.DaysOfHistory,
		Tolerances:    r.Tolerances,
		Home:          newTeamPrediction(r.Home),
		Away:          newTeamPrediction(r.Away),
	}
}

func (w Window) tree(indent int) []string {
	return []string{
		treeTime("From", indent, false, w.From),
		treeTime("To", indent, false, w.To),
		treeInt("GameCount", indent, false, w.GameCount),
		treeFloat64("ComparisonRange", indent, false, w.ComparisonRange),
		treeFloat64("WasHomeTeam", indent, false, w.Rates.WasHomeTeam),
		treeFloat64("MoreOffensivelyEfficient", indent, false, w.Rates.MoreOffensivelyEfficient),
		treeFloat64("MoreDefensivelyEfficient", indent, false, w.Rates.MoreDefensivelyEfficient),
		treeFloat64("HadHigherWinningPercentage", indent, false, w.Rates.HadHigherWinningPercentage),
		treeFloat64("AveragePointGap", indent, true, w.Rates.AveragePointGap),
	}
}

func (t TeamPrediction) tree(indent int) []string {
	ss := []string{
		treeString("Team", indent, false, fmt.Sprintf("%s (%d)", t.Team.Name, t.Team.ID)),
		treeFloat64("WinningPercentageGap", indent, false, t.Gap.WinningPercentage),
		treeFloat64("OffensiveEfficiencyGap", indent, false, t.Gap.OffensiveEfficiency),
		treeInt("OffensiveRankGap", indent, false, t.Gap.OffensiveRank),
		treeFloat64("DefensiveEfficiencyGap", indent, false, t.Gap.DefensiveEfficiency),
		treeInt("DefensiveRankGap", indent, false, t.Gap.DefensiveRank),
	}
	ss = append(ss, treeElement("WinningPercentage", indent, false))
	ss = append(ss, t.WinningPercentage.tree(indent+2)...)
	ss = append(ss, treeElement("OffensiveEfficiency", indent, false))
	ss = append(ss, t.OffensiveEfficiency.tree(indent+2)...)
	ss = append(ss, treeElement("DefensiveEfficiency", indent, true))
	ss = append(ss, t.DefensiveEfficiency.tree(indent+2)...)
	return ss
}

// String implements Stringer interface
func (p Prediction) String() string {
	var sb strings.Builder
	sb.WriteString("Prediction\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("GameID", 0, false, p.GameID))
	ss = append(ss, treeString("Date", 0, false, p.Date.Format(dateLayout)))
	ss = append(ss, treeInt("DaysOfHistory", 0, false, p.DaysOfHistory))
	ss = append(ss, treeFloat64("WinningPercentageTolerance", 0, false, p.Tolerances.WinningPercentage))
	ss = append(ss, treeFloat64("OffensiveEfficiencyTolerance", 0, false, p.Tolerances.OffensiveEfficiency))
	ss = append(ss, treeFloat64("DefensiveEfficiencyTolerance", 0, false, p.Tolerances.DefensiveEfficiency))
	ss = append(ss, treeElement("Home", 0, false))
	ss = append(ss, p.Home.tree(2)...)
	ss = append(ss, treeElement("Away", 0, true))
	ss = append(ss, p.Away.tree(2)...)
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// PredictionRef is where the prediction for a game is stored: predictions/{date}/games/{gameID}.
func PredictionRef(client *firestore.Client, date time.Time, gameID string) *firestore.DocumentRef {
	return client.Collection(PREDICTIONS_COLLECTION).Doc(date.Format(dateLayout)).Collection(GAMES_COLLECTION).Doc(gameID)
}

// WritePrediction stores a prediction. An existing prediction for the same game is only replaced if force is true.
func WritePrediction(ctx context.Context, client *firestore.Client, p Prediction, force bool) (*firestore.DocumentRef, error) {
	ref := PredictionRef(client, p.Date, p.GameID)
	var err error
	if force {
		_, err = ref.Set(ctx, p)
	} else {
		_, err = ref.Create(ctx, p)
	}
	if status.Code(err) == codes.AlreadyExists {
		return ref, fmt.Errorf("WritePrediction: prediction %s already exists (use force to overwrite): %w", ref.Path, err)
	}
	if err != nil {
		return ref, fmt.Errorf("WritePrediction: unable to write prediction %s: %w", ref.Path, err)
	}
	return ref, nil
}

// GetPrediction reads the stored prediction for one game. The boolean is false if none is stored.
func GetPrediction(ctx context.Context, client *firestore.Client, date time.Time, gameID string) (Prediction, bool, error) {
	var p Prediction
	snap, err := PredictionRef(client, date, gameID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return p, false, nil
	}
	if err != nil {
		return p, false, fmt.Errorf("GetPrediction: unable to get prediction snapshot: %w", err)
	}
	if err := snap.DataTo(&p); err != nil {
		return p, false, fmt.Errorf("GetPrediction: unable to read prediction snapshot data: %w", err)
	}
	return p, true, nil
}

// GetPredictions returns every prediction stored for a day, ordered by game ID.
func GetPredictions(ctx context.Context, client *firestore.Client, date time.Time) ([]Prediction, []*firestore.DocumentRef, error) {
	iter := client.Collection(PREDICTIONS_COLLECTION).Doc(date.Format(dateLayout)).Collection(GAMES_COLLECTION).
		OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	predictions := make([]Prediction, 0)
	refs := make([]*firestore.DocumentRef, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if status.Code(err) == codes.NotFound {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("GetPredictions: error getting prediction snapshot: %w", err)
		}
		var p Prediction
		if err := ss.DataTo(&p); err != nil {
			return nil, nil, fmt.Errorf("GetPredictions: error getting prediction snapshot data: %w", err)
		}
		predictions = append(predictions, p)
		refs = append(refs, ss.Ref)
	}
	return predictions, refs, nil
}
