package fetchstats

import (
	"errors"
	"fmt"
	"time"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
)

// Summary counts what happened to each day of a fetch.
type Summary struct {
	Written   int
	Unchanged int
	Skipped   int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d written, %d unchanged, %d skipped", s.Written, s.Unchanged, s.Skipped)
}

// fetcher downloads one day of a source and checks that it parses.
type fetcher func(ctx *Context, day time.Time) ([]byte, error)

func fetchBoxScores(ctx *Context, day time.Time) ([]byte, error) {
	body, err := ctx.Client.BoxScores(ctx, day, day)
	if err != nil {
		return nil, err
	}
	if _, err := nbadata.ParseBoxScores(body); err != nil {
		return nil, err
	}
	return body, nil
}

func fetchTeamStats(ctx *Context, day time.Time) ([]byte, error) {
	body, err := ctx.Client.TeamStats(ctx, day)
	if err != nil {
		return nil, err
	}
	if _, err := nbadata.ParseTeamStats(body); err != nil {
		return nil, err
	}
	return body, nil
}

func fetchMatchups(ctx *Context, day time.Time) ([]byte, error) {
	body, err := ctx.Client.Scoreboard(ctx, day)
	if err != nil {
		return nil, err
	}
	if _, err := nbadata.ParseScoreboard(body, day); err != nil {
		return nil, err
	}
	return body, nil
}

// FetchBoxScores stores the final scores of every day from ctx.From through ctx.To.
func FetchBoxScores(ctx *Context) (Summary, error) {
	return fetchRange(ctx, blobstore.BoxScores, fetchBoxScores)
}

// FetchTeamStats stores season-to-date advanced team statistics as of every day from ctx.From through ctx.To.
func FetchTeamStats(ctx *Context) (Summary, error) {
	return fetchRange(ctx, blobstore.TeamStats, fetchTeamStats)
}

// FetchMatchups stores the schedule of every day from ctx.From through ctx.To.
func FetchMatchups(ctx *Context) (Summary, error) {
	return fetchRange(ctx, blobstore.Matchups, fetchMatchups)
}

func fetchRange(ctx *Context, src blobstore.Source, fetch fetcher) (Summary, error) {
	var summary Summary
	from, to := nbadata.Day(ctx.From), nbadata.Day(ctx.To)
	if to.IsZero() {
		to = from
	}
	if to.Before(from) {
		return summary, fmt.Errorf("fetch %s: end date %s is before start date %s", src, to.Format(nbadata.FileDateLayout), from.Format(nbadata.FileDateLayout))
	}
	days := int(to.Sub(from).Hours()/24) + 1

	bar := progressbar.NewOptions(days,
		progressbar.OptionSetDescription(string(src)),
		progressbar.OptionSetVisibility(!ctx.NoProgress),
		progressbar.OptionShowCount(),
	)
	defer bar.Finish()

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		bar.Add(1)
		log := ctx.Logger.With("source", src, "date", day.Format(nbadata.FileDateLayout))

		if !ctx.Force {
			_, err := ctx.Store.Get(ctx, src, day)
			if err == nil {
				log.Debug("already stored, skipping")
				summary.Skipped++
				continue
			}
			if !errors.Is(err, blobstore.ErrNotFound) {
				return summary, fmt.Errorf("fetch %s: %w", src, err)
			}
		}

		body, err := fetch(ctx, day)
		if err != nil {
			return summary, fmt.Errorf("fetch %s: %s: %w", src, day.Format(nbadata.FileDateLayout), err)
		}

		if ctx.DryRun {
			log.Infow("DRY RUN: would store document", "key", src.Key(day), "bytes", len(body), "fingerprint", blobstore.Fingerprint(body))
			summary.Skipped++
			continue
		}

		result, err := ctx.Store.Put(ctx, src, day, body)
		if err != nil {
			return summary, fmt.Errorf("fetch %s: %w", src, err)
		}
		switch result {
		case blobstore.Unchanged:
			summary.Unchanged++
		default:
			summary.Written++
		}
		log.Infow("stored document", "key", src.Key(day), "result", result.String())
	}
	return summary, nil
}
