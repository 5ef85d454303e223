package facades

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/recipeshare/server/internal/logger"
)

// S3API is the subset of the S3 client used by the media facade.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewS3Client builds an S3 client for the given region and credentials.
// An endpoint override makes it work against MinIO in development.
func NewS3Client(ctx context.Context, region, endpoint, accessKey, secretKey string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// MediaFacade implements the media store on S3-compatible object storage.
type MediaFacade struct {
	client S3API
	bucket string
}

// NewMediaFacade creates a facade bound to one bucket.
func NewMediaFacade(client S3API, bucket string) *MediaFacade {
	return &MediaFacade{client: client, bucket: bucket}
}

// StorageKey builds a collision-resistant object key from an uploaded
// file name.
func StorageKey(filename string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)
}

// Upload stores an object under the given key.
func (f *MediaFacade) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload object", "key", key, "error", err)
		return err
	}

	return nil
}

// Download streams an object back by key. The caller closes the reader.
func (f *MediaFacade) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch object", "key", key, "error", err)
		return nil, err
	}

	return out.Body, nil
}

// Delete removes an object by key.
func (f *MediaFacade) Delete(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("failed to delete object", "key", key, "error", err)
		return err
	}

	return nil
}
