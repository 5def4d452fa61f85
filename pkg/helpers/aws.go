package helpers

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
)

// AwsErrorCode returns the service error code of an aws error, if any
func AwsErrorCode(err error) string {
	if ae, ok := err.(awserr.Error); ok {
		return ae.Code()
	}

	return ""
}
