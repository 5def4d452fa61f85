package storage

import (
	"context"

	"github.com/convox/logger"
)

var Logger = logger.New("ns=storage")

// Store writes objects to a bucket
type Store interface {
	Put(ctx context.Context, bucket, key string, body []byte) error
}
