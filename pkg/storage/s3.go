package storage

import (
	"bytes"
	"context"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// S3API is the subset of the s3 client used by S3
type S3API interface {
	PutObjectWithContext(aws.Context, *s3.PutObjectInput, ...request.Option) (*s3.PutObjectOutput, error)
}

type S3 struct {
	client S3API
}

// NewS3 returns a Store backed by the given client
func NewS3(client S3API) *S3 {
	return &S3{client: client}
}

// S3Client returns an S3 client for the given region and endpoint. A custom
// endpoint switches to path style addressing so S3 compatible servers work.
func S3Client(region, endpoint string) (*s3.S3, error) {
	config := &aws.Config{}

	if region != "" {
		config.Region = aws.String(region)
	}

	if endpoint != "" {
		config.Endpoint = aws.String(endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	if os.Getenv("DEBUG") != "" {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	s, err := session.NewSession(config)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s3.New(s), nil
}

func (s *S3) Put(ctx context.Context, bucket, key string, body []byte) error {
	log := Logger.At("s3.Put").Namespace("bucket=%q key=%q", bucket, key).Start()

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(body),
		Bucket:      aws.String(bucket),
		ContentType: aws.String("application/json"),
		Key:         aws.String(key),
	})
	if err != nil {
		return errors.WithStack(log.Error(err))
	}

	log.Successf("size=%s", humanize.Bytes(uint64(len(body))))

	return nil
}
