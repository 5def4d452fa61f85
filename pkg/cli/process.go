package cli

import (
	"context"

	"github.com/convox/logarchive/pkg/archive"
	"github.com/convox/logarchive/pkg/config"
	"github.com/convox/logarchive/pkg/helpers"
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/stdcli"
)

func init() {
	register("process", "store the log batch of a subscription event", Process, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagBucket, flagDir},
		Usage:    "[file]",
		Validate: stdcli.ArgsMax(1),
	})
}

func Process(s storage.Store, c *stdcli.Context) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	bucket := helpers.CoalesceString(c.String("bucket"), cfg.Bucket)

	if bucket == "" {
		return config.ErrBucketRequired
	}

	data, err := readEvent(c)
	if err != nil {
		return err
	}

	c.Startf("Storing log batch in <info>%s</info>", bucket)

	key, err := archive.New(bucket, s).Process(context.Background(), data)
	if err != nil {
		return err
	}

	return c.OK(key)
}
