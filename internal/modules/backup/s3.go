package backup

import (
	"bytes"
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/majlis-kantho/core/internal/config"
)

// ErrOffsiteDisabled is returned when no bucket is configured.
var ErrOffsiteDisabled = errors.New("offsite backup is not configured")

type s3Uploader struct {
	client *s3.Client
	bucket string
}

// newS3Uploader builds a client from static credentials. A custom endpoint
// (MinIO and friends) forces path-style addressing.
func newS3Uploader(opts config.S3Options) *s3Uploader {
	cfg := aws.Config{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
		if opts.PathStyleAccess {
			o.UsePathStyle = true
		}
	})
	return &s3Uploader{client: client, bucket: opts.Bucket}
}

func (u *s3Uploader) Put(ctx context.Context, key string, payload []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	return err
}
