package predictions

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallyasi9/nbapredict/internal/firestore"
)

func TestLsPredictionsNeedsClient(t *testing.T) {
	ctx := NewContext(context.Background())
	assert.ErrorContains(t, LsPredictions(ctx), "no Firestore client")
}

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func TestLsPredictions(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	bg := context.Background()
	client, err := fs.NewClient(bg, "nbapredict-test")
	require.NoError(t, err)
	defer client.Close()

	date := time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"0021900712", "0021900710"} {
		_, err := firestore.WritePrediction(bg, client, firestore.Prediction{GameID: id, Date: date, DaysOfHistory: 30}, true)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	ctx := NewContext(bg)
	ctx.FirestoreClient = client
	ctx.Output = &buf
	ctx.Date = date
	require.NoError(t, LsPredictions(ctx))
	out := buf.String()
	require.Contains(t, out, "0021900710")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("0021900710")), bytes.Index(buf.Bytes(), []byte("0021900712")))

	buf.Reset()
	ctx.GameID = "0021900712"
	require.NoError(t, LsPredictions(ctx))
	assert.Contains(t, buf.String(), "0021900712")
	assert.NotContains(t, buf.String(), "0021900710")

	buf.Reset()
	ctx.GameID = "0000000000"
	require.NoError(t, LsPredictions(ctx))
	assert.Contains(t, buf.String(), "No prediction saved for game 0000000000")

	buf.Reset()
	ctx.GameID = ""
	ctx.Date = date.AddDate(-1, 0, 0)
	require.NoError(t, LsPredictions(ctx))
	assert.Contains(t, buf.String(), "No predictions saved on")
}
