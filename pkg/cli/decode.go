package cli

import (
	"fmt"

	"github.com/convox/logarchive/pkg/archive"
	"github.com/convox/logarchive/pkg/storage"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutStore("decode", "decode a subscription event and print its log batch", Decode, stdcli.CommandOptions{
		Usage:    "[file]",
		Validate: stdcli.ArgsMax(1),
	})
}

func Decode(_ storage.Store, c *stdcli.Context) error {
	data, err := readEvent(c)
	if err != nil {
		return err
	}

	b, err := archive.Decode(data)
	if err != nil {
		return err
	}

	body, err := b.MarshalIndent()
	if err != nil {
		return err
	}

	// written raw so log messages are not treated as output tags
	if _, err := fmt.Fprintf(c.Writer().Stdout, "%s\n", body); err != nil {
		return err
	}

	return nil
}
