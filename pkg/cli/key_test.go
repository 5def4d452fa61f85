package cli_test

import (
	"testing"

	"github.com/convox/logarchive/pkg/cli"
	mockstorage "github.com/convox/logarchive/pkg/mock/storage"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		res, err := testExecute(e, "key /aws/lambda/test --time 2024-01-02T03:04:05Z", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"logs/_aws_lambda_test_2024-01-02_03-04-05"})
	})
}

func TestKeyTimezone(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		res, err := testExecute(e, "key /svc/api -t 2024-01-01T20:04:05-07:00", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStdout(t, []string{"logs/_svc_api_2024-01-02_03-04-05"})
	})
}

func TestKeyInvalidTime(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		res, err := testExecute(e, "key /svc/api --time yesterday", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: invalid time: yesterday"})
		res.RequireStdout(t, []string{""})
	})
}

func TestKeyMissingGroup(t *testing.T) {
	testStore(t, func(e *cli.Engine, s *mockstorage.Store) {
		res, err := testExecute(e, "key", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: 1 arg required"})
	})
}
