package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalWriterFactory stands in for a bucket with a folder on disk. The
// bucket name becomes a sub-directory of the base folder.
type LocalWriterFactory struct {
	folder string
}

func NewLocalWriterFactory(folder string) *LocalWriterFactory {
	return &LocalWriterFactory{folder: folder}
}

type LocalWriter struct {
	path   string
	buffer bytes.Buffer
}

func (f *LocalWriterFactory) NewWriter(bucket, objectPath string) (CloudWriter, error) {
	return &LocalWriter{path: filepath.Join(f.folder, bucket, objectPath)}, nil
}

func (w *LocalWriter) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

func (w *LocalWriter) Close(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(w.path), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create output folder: %w", err)
	}
	if err := os.WriteFile(w.path, w.buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", w.path, err)
	}
	return nil
}
