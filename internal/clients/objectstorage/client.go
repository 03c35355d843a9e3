package objectstorage

import (
	"boatshow-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used for uploaded documents
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// PresignAPI signs time-limited GET URLs
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Client stores registration documents in a single bucket
type Client struct {
	api       S3API
	presigner PresignAPI
	bucket    string
	logger    *observability.Logger
}

// NewClient builds a Client from a loaded AWS config. A custom endpoint
// (MinIO, LocalStack) is addressed path-style.
func NewClient(awsCfg aws.Config, bucket string, logger *observability.Logger) *Client {
	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = awsCfg.BaseEndpoint != nil
	})
	return New(api, s3.NewPresignClient(api), bucket, logger)
}

func New(api S3API, presigner PresignAPI, bucket string, logger *observability.Logger) *Client {
	return &Client{
		api:       api,
		presigner: presigner,
		bucket:    bucket,
		logger:    logger,
	}
}

// Put uploads body under key
func (c *Client) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "bucket", Value: c.bucket},
		observability.Field{Key: "object_key", Value: key},
	)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	start := time.Now()
	if _, err := c.api.PutObject(ctx, input); err != nil {
		c.logger.Error(ctx, "failed to upload object", err)
		return fmt.Errorf("object storage: put %s: %w", key, err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "size_bytes", Value: size},
		observability.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
	)
	c.logger.Info(ctx, "object uploaded")
	return nil
}

// Exists reports whether key is present in the bucket
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("object storage: head %s: %w", key, err)
	}
	return true, nil
}

// SignedURL returns a GET URL for key valid for ttl
func (c *Client) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("object storage: presign %s: %w", key, err)
	}
	return req.URL, nil
}
