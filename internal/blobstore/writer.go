package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// gcsWriter closes the storage client it was opened with once the object is finalized.
type gcsWriter struct {
	*storage.Writer
	client *storage.Client
}

func (w *gcsWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create opens a single file for writing outside the daily document layout: gs://bucket/object
// writes to Cloud Storage, anything else is a local path. Closing the writer finalizes the file.
func Create(ctx context.Context, location string) (io.WriteCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("Create: unable to parse location '%s': %w", location, err)
	}
	switch u.Scheme {
	case "gs":
		object := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || object == "" {
			return nil, fmt.Errorf("Create: '%s' names no object", location)
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("Create: failed to create storage client: %w", err)
		}
		return &gcsWriter{Writer: client.Bucket(u.Host).Object(object).NewWriter(ctx), client: client}, nil

	case "file", "":
		name := u.Path
		if u.Scheme == "" {
			name = location
		}
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("Create: %w", err)
		}
		return f, nil

	default:
		return nil, fmt.Errorf("Create: unable to determine how to open '%s'", location)
	}
}
