package cli

import (
	"time"

	"github.com/convox/logarchive/pkg/archive"
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/stdcli"
	"github.com/pkg/errors"
)

func init() {
	registerWithoutStore("key", "print the storage key for a log group", Key, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.StringFlag("time", "t", "timestamp in RFC3339 format (defaults to now)"),
		},
		Usage:    "<log-group>",
		Validate: stdcli.Args(1),
	})
}

func Key(_ storage.Store, c *stdcli.Context) error {
	t := time.Now()

	if v := c.String("time"); v != "" {
		pt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return errors.Errorf("invalid time: %s", v)
		}
		t = pt
	}

	c.Writef("%s\n", archive.Key(c.Arg(0), t))

	return nil
}
