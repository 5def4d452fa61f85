package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Local stores objects on disk at root/bucket/key
type Local struct {
	Root string
}

func NewLocal(root string) *Local {
	return &Local{Root: root}
}

func (l *Local) Put(ctx context.Context, bucket, key string, body []byte) error {
	log := Logger.At("local.Put").Namespace("bucket=%q key=%q", bucket, key).Start()

	if bucket == "" {
		return log.Error(fmt.Errorf("bucket must not be blank"))
	}

	if key == "" {
		return log.Error(fmt.Errorf("key must not be blank"))
	}

	fn, err := l.path(bucket, key)
	if err != nil {
		return log.Error(err)
	}

	if err := ctx.Err(); err != nil {
		return errors.WithStack(log.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(fn), 0700); err != nil {
		return errors.WithStack(log.Error(err))
	}

	fd, err := os.OpenFile(fn, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return errors.WithStack(log.Error(err))
	}
	defer fd.Close()

	if _, err := fd.Write(body); err != nil {
		return errors.WithStack(log.Error(err))
	}

	if err := fd.Close(); err != nil {
		return errors.WithStack(log.Error(err))
	}

	log.Successf("size=%s", humanize.Bytes(uint64(len(body))))

	return nil
}

func (l *Local) path(bucket, key string) (string, error) {
	root := filepath.Clean(l.Root)
	fn := filepath.Join(root, bucket, key)

	if !strings.HasPrefix(fn, root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path: %s/%s", bucket, key)
	}

	return fn, nil
}
