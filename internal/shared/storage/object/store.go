package object

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Reader opens stored objects by key.
type Reader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Location identifies an object in a bucket.
type Location struct {
	Bucket string
	Key    string
}

// ParseS3URI splits "s3://bucket/key". The bool reports whether raw uses the
// s3 scheme at all.
func ParseS3URI(raw string) (Location, bool, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(raw), "s3://")
	if !ok {
		return Location{}, false, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	key = strings.TrimLeft(key, "/")
	if bucket == "" || key == "" {
		return Location{}, true, fmt.Errorf("invalid s3 uri %q: bucket and key are required", raw)
	}
	return Location{Bucket: bucket, Key: key}, true, nil
}
