package cli

import (
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/stdcli"
)

type HandlerFunc func(storage.Store, *stdcli.Context) error

var (
	flagBucket = stdcli.StringFlag("bucket", "b", "destination bucket (defaults to $BUCKET_NAME)")
	flagDir    = stdcli.StringFlag("dir", "d", "store objects in a local directory instead of s3")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
