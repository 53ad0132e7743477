package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"photoalbum/config"
	"photoalbum/models"
)

// BlobStore persists named byte blobs and hands back a public
// retrieval URL. Writes overwrite on key collision.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// S3Store stores blobs in an S3 (or S3-compatible) bucket.
type S3Store struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewS3Store builds the S3 client. With cfg.S3Endpoint set it points
// at an S3-compatible store using static credentials; otherwise the
// default AWS credential chain applies.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	var awsCfg aws.Config
	var err error

	if cfg.S3Endpoint != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey,
				cfg.S3SecretKey,
				"",
			)),
			awsconfig.WithRegion(cfg.AWSRegion),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	}
	if err != nil {
		log.Println("failed to load AWS config:", err)
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.BucketName,
		region:   cfg.AWSRegion,
		endpoint: cfg.S3Endpoint,
	}, nil
}

// Put uploads a blob under the given key. An empty contentType
// defaults to image/jpeg. Returns the public URL for the object.
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	contentType = defaultContentType(contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		log.Println("S3 PutObject error:", err)
		return "", fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	return s.publicURL(key), nil
}

// defaultContentType falls back to a generic image type when the
// caller did not supply one.
func defaultContentType(contentType string) string {
	if contentType == "" {
		return "image/jpeg"
	}
	return contentType
}

// publicURL builds the retrieval URL for a stored object: path-style
// against a custom endpoint, virtual-hosted AWS style otherwise.
func (s *S3Store) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
