// Package object stores uploaded fabric and try-on photos in S3.
package object

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FabricStore describes photo storage operations.
type FabricStore interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
	PresignURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// S3Store implements FabricStore on an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store creates the store. Static credentials are optional; without them
// the default AWS credential chain applies.
func NewS3Store(ctx context.Context, region, accessKeyID, secretAccessKey, bucket string) (*S3Store, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(region),
	}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Upload stores the photo and returns its object key.
func (s *S3Store) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("fabrics/%d_%s", time.Now().Unix(), filepath.Base(name))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return key, nil
}

// PresignURL returns a time-limited download URL for the object.
func (s *S3Store) PresignURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	presign := s3.NewPresignClient(s.client)
	req, err := presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("presign url: %w", err)
	}
	return req.URL, nil
}

// Delete removes the object. Empty keys are ignored.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete from s3: %w", err)
	}
	return nil
}
