package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FS stores objects as files under a root directory.
type FS struct {
	root   string
	prefix string
}

// NewFS returns a filesystem store rooted at dir.
func NewFS(dir, prefix string) (*FS, error) {
	if dir == "" {
		return nil, errors.New("fs export: no directory")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("fs export: %w", err)
	}
	return &FS{root: abs, prefix: prefix}, nil
}

// Driver returns "fs".
func (f *FS) Driver() string { return DriverFS }

// Put writes body to the key's file, replacing any previous content.
func (f *FS) Put(_ context.Context, key string, body []byte, contentType string) (Info, error) {
	k, err := cleanKey(f.prefix, key)
	if err != nil {
		return Info{}, err
	}
	p := filepath.Join(f.root, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return Info{}, fmt.Errorf("creating export dir: %w", err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, body, 0o600); err != nil {
		return Info{}, fmt.Errorf("writing %s: %w", k, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return Info{}, fmt.Errorf("writing %s: %w", k, err)
	}
	return Info{Key: k, Size: int64(len(body)), ContentType: contentType, Location: p}, nil
}

// Get reads the key's file.
func (f *FS) Get(_ context.Context, key string) ([]byte, error) {
	k, err := cleanKey(f.prefix, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(k))) //nolint:gosec // key is cleaned and rooted
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", k, ErrNotFound)
	}
	return data, err
}

// List returns objects whose key starts with prefix, sorted by key.
func (f *FS) List(_ context.Context, prefix string) ([]Info, error) {
	var infos []Info
	full := strings.TrimPrefix(strings.TrimSuffix(f.prefix, "/")+"/"+prefix, "/")
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, ".tmp") {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, full) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, Info{
			Key:         key,
			Size:        fi.Size(),
			ContentType: mime.TypeByExtension(filepath.Ext(p)),
			Location:    p,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}
