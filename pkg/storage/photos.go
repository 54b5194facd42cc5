// Package storage stores recipe photos in an S3-compatible backend
// (AWS S3 or MinIO). Minimal surface area: single bucket, keys map to
// object keys directly.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/recipath/recipath/pkg/config"
)

// PhotoStore persists recipe photos and hands back opaque references.
// A reference is the object key; callers store it on the recipe and use
// PresignGet to turn it into a short-lived display URL.
type PhotoStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewPhotoStore builds a PhotoStore from application config. Static
// credentials are used when an access key is configured (MinIO dev setup);
// otherwise the default AWS credential chain applies.
func NewPhotoStore(ctx context.Context, cfg *appconfig.Config) (*PhotoStore, error) {
	if cfg.PhotoBucket == "" {
		return nil, fmt.Errorf("photo bucket required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.PhotoRegion),
	}
	if cfg.PhotoAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.PhotoAccessKey, cfg.PhotoSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PhotoPathStyle {
			o.UsePathStyle = true
		}
		if cfg.PhotoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.PhotoEndpoint)
		}
	})

	return &PhotoStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.PhotoBucket,
	}, nil
}

// Put uploads a photo for the given owner and returns its opaque reference.
// Keys are scoped by owner so one user can never overwrite another's photos.
func (p *PhotoStore) Put(ctx context.Context, ownerID string, r io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("photos/%s/%s", ownerID, uuid.NewString())

	input := &s3.PutObjectInput{
		Bucket: &p.bucket,
		Key:    &key,
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put photo: %w", err)
	}
	return key, nil
}

// PresignGet returns a short-lived URL for displaying the referenced photo.
func (p *PhotoStore) PresignGet(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	out, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &p.bucket,
		Key:    &ref,
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return out.URL, nil
}

// Delete removes the referenced photo. Missing objects are not an error —
// S3 deletes are idempotent.
func (p *PhotoStore) Delete(ctx context.Context, ref string) error {
	if _, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &p.bucket,
		Key:    &ref,
	}); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
