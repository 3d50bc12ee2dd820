package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vattr/internal/errors"
)

// FileStore writes documents below Dir.
type FileStore struct {
	Dir string
}

// Put writes html to Dir/key through a temporary file, so readers never
// see a partial document.
func (s *FileStore) Put(ctx context.Context, key string, html []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.New("E300").Wrap(err)
	}
	if key == "" || filepath.IsAbs(key) || strings.HasPrefix(filepath.Clean(key), "..") {
		return "", errors.New("E301").WithDetail(fmt.Sprintf("invalid key %q", key))
	}

	dest := filepath.Join(s.Dir, key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.New("E300").Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".vattr-*")
	if err != nil {
		return "", errors.New("E300").Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return "", errors.New("E300").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.New("E300").Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", errors.New("E300").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", errors.New("E300").Wrap(err)
	}
	return dest, nil
}
