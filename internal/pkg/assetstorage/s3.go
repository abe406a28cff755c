package assetstorage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// S3Config holds the settings for the S3-compatible storage driver.
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string // optional, for S3-compatible stores
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// S3Storage stores faculty photos in an S3-compatible bucket.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Storage builds the S3 client and returns the storage driver.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: cfg.PublicBaseURL,
	}, nil
}

// Upload stores the file under a fresh object key and returns its public URL.
// Callers must not assume a partial upload is visible after an error.
func (s *S3Storage) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := NewObjectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to upload image to bucket")
		return "", fmt.Errorf("%w: upload of %s: %v", apperrors.ErrStorageFailure, filename, err)
	}

	fileURL := PublicURL(s.baseURL, key)
	logger.Info().Str("key", key).Str("url", fileURL).Msg("Image uploaded")
	return fileURL, nil
}

// Delete removes the object behind a retrieval URL. A URL the object path
// cannot be derived from, or an already-absent object, is treated as done.
func (s *S3Storage) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	key, ok := ObjectPathFromURL(fileURL)
	if !ok {
		logger.Warn().Str("url", fileURL).Msg("Could not derive object path from image URL, skipping delete")
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil
		}
		logger.Error().Err(err).Str("key", key).Msg("Failed to delete image from bucket")
		return fmt.Errorf("%w: delete of %s: %v", apperrors.ErrStorageFailure, key, err)
	}

	logger.Info().Str("key", key).Msg("Image deleted")
	return nil
}
