package cloudwriter

import (
	"bytes"
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakePutObject struct {
	bucket, key string
	body        []byte
	err         error
}

func (f *fakePutObject) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 8, 0, 5, 0, time.UTC)
}

func TestObjectKey(t *testing.T) {
	if got := ObjectKey(fixedClock()); got != "traffic_data_20240101080005.json" {
		t.Errorf("unexpected key %s", got)
	}
}

func TestArchiveSaveS3(t *testing.T) {
	api := &fakePutObject{}
	archive := NewArchive(NewS3WriterFactory(api), "traffic-monitoring-data-bucket").WithClock(fixedClock)

	key, err := archive.Save(context.Background(), []byte("sealed"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if key != "traffic_data_20240101080005.json" || api.key != key {
		t.Errorf("unexpected key %s / %s", key, api.key)
	}
	if api.bucket != "traffic-monitoring-data-bucket" {
		t.Errorf("unexpected bucket %s", api.bucket)
	}
	if !bytes.Equal(api.body, []byte("sealed")) {
		t.Errorf("unexpected body %q", api.body)
	}
}

func TestArchiveSaveS3Error(t *testing.T) {
	api := &fakePutObject{err: errors.New("access denied")}
	archive := NewArchive(NewS3WriterFactory(api), "b").WithClock(fixedClock)

	if _, err := archive.Save(context.Background(), []byte("sealed")); err == nil {
		t.Error("expected upload error, got nil")
	}
}

func TestArchiveSaveLocal(t *testing.T) {
	dir := t.TempDir()
	archive := NewArchive(NewLocalWriterFactory(dir), "bucket").WithClock(fixedClock)

	key, err := archive.Save(context.Background(), []byte("sealed"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bucket", key))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "sealed" {
		t.Errorf("unexpected content %q", data)
	}
}
