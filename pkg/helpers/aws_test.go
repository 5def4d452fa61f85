package helpers_test

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/convox/logarchive/pkg/helpers"
	"github.com/stretchr/testify/require"
)

func TestAwsErrorCode(t *testing.T) {
	require.Equal(t, "AccessDenied", helpers.AwsErrorCode(awserr.New("AccessDenied", "Access Denied", nil)))
	require.Equal(t, "", helpers.AwsErrorCode(fmt.Errorf("plain error")))
	require.Equal(t, "", helpers.AwsErrorCode(nil))
}
