// Package exportstore keeps exported label files on local disk or in an
// S3-compatible bucket.
package exportstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// FileStore writes exports under a directory. contentType is ignored.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("export dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Put writes data to dir/name and returns the file path. Names must not
// contain path separators.
func (s *FileStore) Put(ctx context.Context, name, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", errs.NewValueIsInvalidError("file name")
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", name, err)
	}
	return path, nil
}
