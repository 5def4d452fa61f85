package cli

import (
	"io"
	"os"

	"github.com/convox/stdcli"
	"github.com/pkg/errors"
)

// readEvent reads an event from the file named by the first argument or from stdin
func readEvent(c *stdcli.Context) ([]byte, error) {
	if fn := c.Arg(0); fn != "" && fn != "-" {
		data, err := os.ReadFile(fn)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return data, nil
	}

	data, err := io.ReadAll(c.Reader())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
