package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/convox/logarchive/pkg/cli"
	mockstorage "github.com/convox/logarchive/pkg/mock/storage"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		event := testEvent(t, `{"logGroup":"/svc/api","logEvents":[{"message":"<u>hello</u>"}]}`)

		res, err := testExecute(e, "decode", strings.NewReader(event))
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			`{`,
			`  "logGroup": "/svc/api",`,
			`  "logEvents": [`,
			`    {`,
			`      "message": "<u>hello</u>"`,
			`    }`,
			`  ]`,
			`}`,
		})
	})
}

func TestDecodeFile(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		fn := filepath.Join(t.TempDir(), "event.json")
		require.NoError(t, os.WriteFile(fn, []byte(testEvent(t, `{"logGroup":"g","logEvents":[]}`)), 0600))

		res, err := testExecute(e, "decode "+fn, nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{
			`{`,
			`  "logGroup": "g",`,
			`  "logEvents": []`,
			`}`,
		})
	})
}

func TestDecodeError(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		res, err := testExecute(e, "decode", strings.NewReader(`{"awslogs":{}}`))
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: malformed-event: missing awslogs.data"})
		res.RequireStdout(t, []string{""})
	})
}
