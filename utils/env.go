package utils

import "os"

var (
	// DATASTORE selects where batches are read from and DDL is written to,
	// either `disk` or `s3`
	DATASTORE = GetEnvOrDefault("DATASTORE", "disk")
	DATA_DIR  = GetEnvOrDefault("DATA_DIR", "./data")

	AWS_ACCESS_KEY_ID     = os.Getenv("AWS_ACCESS_KEY_ID")
	AWS_SECRET_ACCESS_KEY = os.Getenv("AWS_SECRET_ACCESS_KEY")
	AWS_DEFAULT_REGION    = GetEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1")

	S3_BUCKET_NAME = os.Getenv("S3_BUCKET_NAME")
	S3_ENDPOINT    = os.Getenv("S3_ENDPOINT")
)
