package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Local is a Store rooted at a directory on disk.
type Local struct {
	root string
}

func openLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("Open: failed to create store directory %s: %w", root, err)
	}
	return &Local{root: root}, nil
}

func (l *Local) path(src Source, date time.Time) string {
	return filepath.Join(l.root, filepath.FromSlash(src.Key(date)))
}

func (l *Local) Get(ctx context.Context, src Source, date time.Time) ([]byte, error) {
	b, err := os.ReadFile(l.path(src, date))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Get: %s: %w", src.Key(date), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return b, nil
}

func (l *Local) Put(ctx context.Context, src Source, date time.Time, body []byte) (PutResult, error) {
	p := l.path(src, date)
	if existing, err := os.ReadFile(p); err == nil && Fingerprint(existing) == Fingerprint(body) {
		return Unchanged, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return Written, fmt.Errorf("Put: %w", err)
	}
	// Write then rename so readers never see a partial document.
	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return Written, fmt.Errorf("Put: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return Written, fmt.Errorf("Put: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Written, fmt.Errorf("Put: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return Written, fmt.Errorf("Put: %w", err)
	}
	return Written, nil
}

func (l *Local) Dates(ctx context.Context, src Source) ([]time.Time, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, string(src)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Dates: %w", err)
	}
	var dates []time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if d, ok := src.parseKey(e.Name()); ok {
			dates = append(dates, d)
		}
	}
	sortDates(dates)
	return dates, nil
}

func (l *Local) Location() string { return l.root }

func (l *Local) Close() error { return nil }
