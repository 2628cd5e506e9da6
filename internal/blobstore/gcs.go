package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

const fingerprintKey = "fingerprint"

// GCS is a Store in a Google Cloud Storage bucket, optionally under a prefix.
type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
	prefix string
}

func openGCS(ctx context.Context, bucket, prefix string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Open: failed to create storage client: %w", err)
	}
	return &GCS{
		client: client,
		bucket: client.Bucket(bucket),
		name:   bucket,
		prefix: prefix,
	}, nil
}

func (g *GCS) object(src Source, date time.Time) *storage.ObjectHandle {
	return g.bucket.Object(path.Join(g.prefix, src.Key(date)))
}

func (g *GCS) Get(ctx context.Context, src Source, date time.Time) ([]byte, error) {
	r, err := g.object(src, date).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("Get: %s: %w", src.Key(date), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Get: failed reading %s: %w", src.Key(date), err)
	}
	return b, nil
}

func (g *GCS) Put(ctx context.Context, src Source, date time.Time, body []byte) (PutResult, error) {
	obj := g.object(src, date)
	fp := Fingerprint(body)

	attrs, err := obj.Attrs(ctx)
	switch {
	case err == nil:
		if attrs.Metadata[fingerprintKey] == fp {
			return Unchanged, nil
		}
	case errors.Is(err, storage.ErrObjectNotExist):
	default:
		return Written, fmt.Errorf("Put: failed to read attributes of %s: %w", src.Key(date), err)
	}

	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	w.Metadata = map[string]string{fingerprintKey: fp}
	if _, err := w.Write(body); err != nil {
		w.Close()
		return Written, fmt.Errorf("Put: failed writing %s: %w", src.Key(date), err)
	}
	if err := w.Close(); err != nil {
		return Written, fmt.Errorf("Put: failed to finalize %s: %w", src.Key(date), err)
	}
	return Written, nil
}

func (g *GCS) Dates(ctx context.Context, src Source) ([]time.Time, error) {
	q := &storage.Query{Prefix: path.Join(g.prefix, string(src)) + "/"}
	if err := q.SetAttrSelection([]string{"Name"}); err != nil {
		return nil, fmt.Errorf("Dates: %w", err)
	}
	var dates []time.Time
	it := g.bucket.Objects(ctx, q)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Dates: failed listing gs://%s/%s: %w", g.name, q.Prefix, err)
		}
		if d, ok := src.parseKey(attrs.Name); ok {
			dates = append(dates, d)
		}
	}
	sortDates(dates)
	return dates, nil
}

func (g *GCS) Location() string {
	return "gs://" + path.Join(g.name, g.prefix)
}

func (g *GCS) Close() error {
	return g.client.Close()
}
