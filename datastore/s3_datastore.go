package datastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/danthegoodman1/ddlgen/utils"
	"github.com/rs/zerolog"
)

type (
	S3DataStore struct {
		uploader   *s3manager.Uploader
		downloader *s3manager.Downloader
	}
)

const s3MaxRetries = 5

func NewS3DataStore() (*S3DataStore, error) {
	s3Config := &aws.Config{
		Region:      aws.String(utils.AWS_DEFAULT_REGION),
		Credentials: credentials.NewEnvCredentials(),
	}
	if utils.S3_ENDPOINT != "" {
		s3Config.Endpoint = aws.String(utils.S3_ENDPOINT)
	}

	s3Session, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("error making new session: %w", err)
	}

	return &S3DataStore{
		uploader:   s3manager.NewUploader(s3Session),
		downloader: s3manager.NewDownloader(s3Session),
	}, nil
}

func (sds *S3DataStore) ReadBatch(ctx context.Context, key string) ([]byte, error) {
	ctx = logger.WithContext(ctx)
	logger := zerolog.Ctx(ctx)

	buf := &aws.WriteAtBuffer{}

	s := time.Now()
	err := utils.ReliableRetry(ctx, s3MaxRetries, func(ctx context.Context) error {
		_, err := sds.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
			Bucket: aws.String(utils.S3_BUCKET_NAME),
			Key:    aws.String(key),
		})
		if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == s3.ErrCodeNoSuchKey {
			return utils.PermError("batch object not found: " + key)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading from s3: %w", err)
	}

	d := time.Since(s)
	logger.Debug().Str("key", key).Int64("durationNS", d.Nanoseconds()).Str("durationHuman", d.String()).Msg("downloaded batch from s3")

	return buf.Bytes(), nil
}

func (sds *S3DataStore) WriteDDL(ctx context.Context, key string, body io.Reader) error {
	ctx = logger.WithContext(ctx)
	logger := zerolog.Ctx(ctx)

	// buffer so a retried upload can re-read the body
	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("error in io.ReadAll: %w", err)
	}

	s := time.Now()
	err = utils.ReliableRetry(ctx, s3MaxRetries, func(ctx context.Context) error {
		_, err := sds.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
			Bucket:      aws.String(utils.S3_BUCKET_NAME),
			Key:         aws.String(key),
			Body:        bytes.NewReader(b),
			ContentType: aws.String("application/sql"),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("error uploading to s3: %w", err)
	}

	d := time.Since(s)
	logger.Debug().Str("key", key).Int64("durationNS", d.Nanoseconds()).Str("durationHuman", d.String()).Msg("uploaded DDL to s3")

	return nil
}

func (sds *S3DataStore) Shutdown(_ context.Context) error {
	return nil
}
