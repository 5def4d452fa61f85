package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/convox/logarchive/pkg/archive"
	"github.com/convox/logarchive/pkg/config"
	"github.com/convox/logarchive/pkg/storage"
)

func main() {
	log := archive.Logger.At("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	client, err := storage.S3Client(cfg.Region, cfg.Endpoint)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	h := archive.New(cfg.Bucket, storage.NewS3(client))

	log.Logf("bucket=%q", cfg.Bucket)

	lambda.Start(h.Handle)
}
