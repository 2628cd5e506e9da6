package predictions

import (
	"errors"
	"fmt"

	"github.com/reallyasi9/nbapredict/internal/firestore"
)

// LsPredictions prints the predictions saved for ctx.Date, or only the one for ctx.GameID.
func LsPredictions(ctx *Context) error {
	if ctx.FirestoreClient == nil {
		return errors.New("LsPredictions: no Firestore client configured")
	}
	day := ctx.Date.Format("2006-01-02")

	if ctx.GameID != "" {
		p, ok, err := firestore.GetPrediction(ctx, ctx.FirestoreClient, ctx.Date, ctx.GameID)
		if err != nil {
			return fmt.Errorf("LsPredictions: %w", err)
		}
		if !ok {
			fmt.Fprintf(ctx.Output, "No prediction saved for game %s on %s\n", ctx.GameID, day)
			return nil
		}
		fmt.Fprintln(ctx.Output, p)
		return nil
	}

	preds, refs, err := firestore.GetPredictions(ctx, ctx.FirestoreClient, ctx.Date)
	if err != nil {
		return fmt.Errorf("LsPredictions: %w", err)
	}
	if len(preds) == 0 {
		fmt.Fprintf(ctx.Output, "No predictions saved on %s\n", day)
		return nil
	}
	for i, p := range preds {
		ctx.Logger.Debugw("read prediction", "path", refs[i].Path)
		fmt.Fprintln(ctx.Output, p)
	}
	return nil
}
