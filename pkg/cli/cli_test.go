package cli_test

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/convox/logarchive/pkg/cli"
	mockstorage "github.com/convox/logarchive/pkg/mock/storage"
	"github.com/convox/logger"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Output = &bytes.Buffer{}
}

type result struct {
	Code   int
	Stdout string
	Stderr string
}

func (r *result) RequireStderr(t *testing.T, lines []string) {
	require.Equal(t, lines, strings.Split(strings.TrimSuffix(r.Stderr, "\n"), "\n"))
}

func (r *result) RequireStdout(t *testing.T, lines []string) {
	require.Equal(t, lines, strings.Split(strings.TrimSuffix(r.Stdout, "\n"), "\n"))
}

func testStore(t *testing.T, fn func(*cli.Engine, *mockstorage.Store)) {
	s := &mockstorage.Store{}

	e := cli.New("logarchive", "test")
	e.Store = s

	fn(e, s)

	s.AssertExpectations(t)
}

func testExecute(e *cli.Engine, cmd string, stdin io.Reader) (*result, error) {
	if stdin == nil {
		stdin = &bytes.Buffer{}
	}

	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}

	e.Reader.Reader = stdin

	e.Writer.Color = false
	e.Writer.Stdout = &stdout
	e.Writer.Stderr = &stderr

	cp, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	code := e.Execute(cp)

	res := &result{
		Code:   code,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	return res, nil
}

func testEvent(t *testing.T, payload string) string {
	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)

	_, err := w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return fmt.Sprintf(`{"awslogs":{"data":%q}}`, base64.StdEncoding.EncodeToString(buf.Bytes()))
}
