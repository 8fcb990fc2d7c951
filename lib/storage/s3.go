package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/augie-sif/sif-backend/config"
)

// ObjectStorage is the bucket contract consumed by the services.
type ObjectStorage interface {
	// Upload stores an object and returns its public URL.
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error)
	// Delete removes an object. Callers treat failures as best-effort.
	Delete(ctx context.Context, bucket, key string) error
	// ParseURL derives (bucket, key) from a public URL produced by Upload.
	// Unrecognized URLs return ok=false rather than an error.
	ParseURL(raw string) (bucket, key string, ok bool)
}

// Client talks to an S3-compatible object store (AWS S3, MinIO, ...).
// Initialization is lazy so the client can be constructed before the
// environment is loaded.
type Client struct {
	once     sync.Once
	s3       *s3.Client
	endpoint string
	initErr  error
}

var shared = &Client{}

// Shared returns the process-wide storage client
func Shared() *Client {
	return shared
}

func (c *Client) ensure() error {
	c.once.Do(func() {
		c.endpoint = strings.TrimSuffix(config.GetEnv("S3_PUBLIC_ENDPOINT", "http://localhost:9000"), "/")

		cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.GetEnv("S3_REGION", "us-east-1")),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.GetEnv("S3_ACCESS_KEY", ""),
				config.GetEnv("S3_SECRET_KEY", ""),
				"",
			)))
		if err != nil {
			c.initErr = err
			return
		}

		c.s3 = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.GetEnv("S3_ENDPOINT", "http://localhost:9000"))
			o.UsePathStyle = true
		})
	})
	return c.initErr
}

// Upload stores an object and returns its path-style public URL.
func (c *Client) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error) {
	if err := c.ensure(); err != nil {
		return "", err
	}

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}

	return c.endpoint + "/" + bucket + "/" + key, nil
}

// Delete removes an object from the bucket.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	if err := c.ensure(); err != nil {
		return err
	}

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// ParseURL derives (bucket, key) from a path-style public URL.
func (c *Client) ParseURL(raw string) (string, string, bool) {
	if err := c.ensure(); err != nil {
		return "", "", false
	}
	return parseObjectURL(c.endpoint, raw)
}

// parseObjectURL splits <endpoint>/<bucket>/<key...> into its parts.
// URLs outside the configured endpoint are not ours to delete.
func parseObjectURL(endpoint, raw string) (string, string, bool) {
	if endpoint == "" || raw == "" {
		return "", "", false
	}
	if !strings.HasPrefix(raw, endpoint+"/") {
		return "", "", false
	}

	rest := strings.TrimPrefix(raw, endpoint+"/")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
