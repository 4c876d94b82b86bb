package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/tcgmarket/marketplace/marketplace"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// objectAPI is the part of *s3.Client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// BlobStore keeps card and deck images in an S3-compatible bucket and hands
// out public URLs for them.
type BlobStore struct {
	client          objectAPI
	bucket          string
	publicURL       string
	defaultImageURL string
}

func NewBlobStore(ctx context.Context, cfg marketplace.StorageConfig) (*BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Key != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return newBlobStore(client, cfg), nil
}

func newBlobStore(client objectAPI, cfg marketplace.StorageConfig) *BlobStore {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &BlobStore{
		client:          client,
		bucket:          cfg.Bucket,
		publicURL:       strings.TrimSuffix(publicURL, "/"),
		defaultImageURL: cfg.DefaultImageURL,
	}
}

// Upload stores data under folder with a fresh random name and returns its public URL.
func (s *BlobStore) Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = config.ImageMimeType
	}
	key := path.Join(folder, uuid.NewString()+config.ImageExtension)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Debug("Image uploaded",
		slog.String("type", "sys"),
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind imageURL. The default image and URLs
// outside this bucket are left alone.
func (s *BlobStore) Delete(ctx context.Context, imageURL string) error {
	if imageURL == "" || imageURL == s.defaultImageURL {
		return nil
	}
	key, ok := s.KeyFromURL(imageURL)
	if !ok {
		slog.Debug("Skipping delete of foreign image",
			slog.String("type", "sys"),
			slog.String("url", imageURL))
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// KeyFromURL maps a public URL back to its object key.
func (s *BlobStore) KeyFromURL(imageURL string) (string, bool) {
	rest, found := strings.CutPrefix(imageURL, s.publicURL+"/")
	if !found || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}
