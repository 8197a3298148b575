// Package blob writes exported reports to a local directory or an
// S3-compatible bucket.
package blob

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// Drivers.
const (
	DriverFS = "fs"
	DriverS3 = "s3"
)

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = errors.New("blob not found")

// Info describes a stored object.
type Info struct {
	Key         string
	Size        int64
	ContentType string
	// Location is a path or s3:// URL a user can open.
	Location string
}

// Store is an export target. Put overwrites existing keys.
type Store interface {
	Driver() string
	Put(ctx context.Context, key string, body []byte, contentType string) (Info, error)
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]Info, error)
}

// Options configures Open.
type Options struct {
	Driver    string
	Dir       string
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool
}

// Open returns the store for opts.Driver. An empty driver means fs.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverFS:
		return NewFS(opts.Dir, opts.Prefix)
	case DriverS3:
		return NewS3(ctx, S3Config{
			Bucket:    opts.Bucket,
			Region:    opts.Region,
			Endpoint:  opts.Endpoint,
			Prefix:    opts.Prefix,
			PathStyle: opts.PathStyle,
		})
	}
	return nil, fmt.Errorf("unknown export driver %q", opts.Driver)
}

// cleanKey joins prefix and key and rejects keys that leave the root.
func cleanKey(prefix, key string) (string, error) {
	k := path.Clean("/" + path.Join(prefix, key))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return k, nil
}
