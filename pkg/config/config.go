package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var ErrBucketRequired = errors.New("BUCKET_NAME is required")

// Config holds the settings read from the environment at startup
type Config struct {
	// Bucket receives the archived log batches
	Bucket string

	// Region and Endpoint configure the S3 client
	Region   string
	Endpoint string
}

// Load reads the configuration from the environment. There is no default
// bucket, a missing BUCKET_NAME is an error.
func Load() (*Config, error) {
	c, err := LoadClient()
	if err != nil {
		return nil, err
	}

	if c.Bucket == "" {
		return nil, ErrBucketRequired
	}

	return c, nil
}

// LoadClient reads the configuration without requiring a bucket, for callers
// that name the bucket themselves
func LoadClient() (*Config, error) {
	v := viper.New()

	for key, env := range map[string]string{
		"bucket":   "BUCKET_NAME",
		"region":   "AWS_REGION",
		"endpoint": "AWS_ENDPOINT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	c := &Config{
		Bucket:   strings.TrimSpace(v.GetString("bucket")),
		Region:   v.GetString("region"),
		Endpoint: v.GetString("endpoint"),
	}

	return c, nil
}
