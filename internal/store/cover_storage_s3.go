// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

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

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// s3API is the subset of *s3.Client used by [s3CoverImageStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3CoverImageStorage keeps cover images as objects in one S3 bucket, keyed
// by image name.
type s3CoverImageStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3CoverImageStorage builds an S3 client from the default AWS
// configuration chain. Static credentials from cfg take precedence when
// both the key id and the secret are set.
func NewS3CoverImageStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (CoverImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3CoverImageStorage").Msg("error loading AWS config")
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	logger.Debug().Str("bucket", cfg.S3Bucket).Msg("creating S3 cover image storage")
	return newS3CoverImageStorage(s3.NewFromConfig(awsCfg), cfg.S3Bucket, logger), nil
}

func newS3CoverImageStorage(client s3API, bucket string, logger *logger.Logger) *s3CoverImageStorage {
	return &s3CoverImageStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

func (s *s3CoverImageStorage) SaveCoverImage(ctx context.Context, name string, r io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3CoverImageStorage.SaveCoverImage").Str("key", name).Msg("error uploading cover image")
		return fmt.Errorf("error uploading cover image: %w", err)
	}

	return nil
}

func (s *s3CoverImageStorage) OpenCoverImage(ctx context.Context, name string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrCoverImageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3CoverImageStorage.OpenCoverImage").Str("key", name).Msg("error downloading cover image")
		return nil, "", fmt.Errorf("error downloading cover image: %w", err)
	}

	return out.Body, aws.ToString(out.ContentType), nil
}

// DeleteCoverImage removes the object. S3 reports success for missing keys.
func (s *s3CoverImageStorage) DeleteCoverImage(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3CoverImageStorage.DeleteCoverImage").Str("key", name).Msg("error removing cover image")
		return fmt.Errorf("error removing cover image: %w", err)
	}

	return nil
}
