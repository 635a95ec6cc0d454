package cloudwriter

import (
	"context"
	"fmt"
	"time"
)

const objectTimeLayout = "20060102150405"

// ObjectKey names the archived object for a point in time.
func ObjectKey(t time.Time) string {
	return fmt.Sprintf("traffic_data_%s.json", t.Format(objectTimeLayout))
}

// Archive writes sealed records to a bucket, one object per record.
type Archive struct {
	factory CloudWriterFactory
	bucket  string
	now     func() time.Time
}

func NewArchive(factory CloudWriterFactory, bucket string) *Archive {
	return &Archive{
		factory: factory,
		bucket:  bucket,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for object keys.
func (a *Archive) WithClock(now func() time.Time) *Archive {
	a.now = now
	return a
}

// Save uploads data and returns the object key it was stored under.
func (a *Archive) Save(ctx context.Context, data []byte) (string, error) {
	key := ObjectKey(a.now())
	w, err := a.factory.NewWriter(a.bucket, key)
	if err != nil {
		return "", fmt.Errorf("failed to create writer for %s: %w", key, err)
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("failed to buffer %s: %w", key, err)
	}
	if err := w.Close(ctx); err != nil {
		return "", err
	}
	return key, nil
}
