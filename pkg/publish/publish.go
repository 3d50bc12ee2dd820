package publish

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vattr/internal/errors"
)

// Store is a destination for rendered documents.
type Store interface {
	// Put stores html under key and returns where it was written.
	Put(ctx context.Context, key string, html []byte) (string, error)
}

// Scheme identifies the kind of target.
type Scheme string

const (
	SchemeFile Scheme = "file"
	SchemeS3   Scheme = "s3"
)

// Target is a parsed publish destination.
type Target struct {
	Scheme Scheme
	Bucket string // s3 only
	Key    string // object key, or file name for file targets
	Dir    string // file only
}

// String returns the target in the form accepted by ParseTarget.
func (t Target) String() string {
	if t.Scheme == SchemeS3 {
		return "s3://" + t.Bucket + "/" + t.Key
	}
	return filepath.Join(t.Dir, t.Key)
}

// ParseTarget parses a file path or an s3://bucket/key URL.
func ParseTarget(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, errors.New("E301").WithDetail("empty target")
	}

	if rest, ok := strings.CutPrefix(raw, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Target{}, errors.New("E301").WithDetail(fmt.Sprintf("%q needs both bucket and key", raw))
		}
		return Target{Scheme: SchemeS3, Bucket: bucket, Key: path.Clean(key)}, nil
	}
	if strings.Contains(raw, "://") {
		return Target{}, errors.New("E301").WithDetail(fmt.Sprintf("unsupported scheme in %q", raw))
	}

	clean := filepath.Clean(raw)
	if strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, string(filepath.Separator)) {
		return Target{}, errors.New("E301").WithDetail(fmt.Sprintf("%q is a directory", raw))
	}
	return Target{Scheme: SchemeFile, Dir: filepath.Dir(clean), Key: filepath.Base(clean)}, nil
}

// Options configures the stores created by Open.
type Options struct {
	// Region is the AWS region for s3 targets.
	Region string

	// Endpoint overrides the S3 endpoint, e.g. for S3-compatible services.
	Endpoint string
}

// Open returns the store for t and the key to pass to Put.
func Open(t Target, opts Options) (Store, string, error) {
	switch t.Scheme {
	case SchemeFile:
		return &FileStore{Dir: t.Dir}, t.Key, nil
	case SchemeS3:
		client := NewS3Client(opts.Region, opts.Endpoint)
		return NewS3Store(client, t.Bucket, ""), t.Key, nil
	default:
		return nil, "", errors.New("E301").WithDetail(fmt.Sprintf("unknown scheme %q", t.Scheme))
	}
}
