package backup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/filex"
	"github.com/google/uuid"
)

// Sink stores an encoded backup under key and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}

// ObjectKey returns a unique key for a backup taken at t, grouped by day.
func ObjectKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("backups/%04d/%02d/%02d/%s.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

// FileSink writes backups below a local directory.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.FromSlash(key))
	if err := filex.WriteFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}
