package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"resume-forge/internal/config"
)

// s3API is the minimal S3 surface required by R2Store. Defined here for
// testability.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Store uploads artifacts to a Cloudflare R2 bucket through the S3 API.
// Keys are uuid4 with the original extension preserved, so every upload is a
// fresh object and sequential requests can never collide.
type R2Store struct {
	api       s3API
	bucket    string
	publicURL string
	logger    *log.Logger
}

func NewR2Store(ctx context.Context, cfg config.R2Config, logger *log.Logger) (*R2Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("storage: bucket must not be empty")
	}
	if strings.TrimSpace(cfg.PublicURL) == "" {
		return nil, errors.New("storage: public URL must not be empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return newR2StoreWithAPI(client, cfg.Bucket, cfg.PublicURL, logger), nil
}

func newR2StoreWithAPI(api s3API, bucket string, publicURL string, logger *log.Logger) *R2Store {
	if logger == nil {
		logger = log.Default()
	}
	return &R2Store{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/"),
		logger:    logger,
	}
}

func (s *R2Store) Store(ctx context.Context, localPath string, contentType string) (Object, error) {
	if contentType == "" {
		contentType = "application/pdf"
	}

	f, err := os.Open(localPath)
	if err != nil {
		return Object{}, fmt.Errorf("storage: open artifact: %w", err)
	}
	defer f.Close()

	original := filepath.Base(localPath)
	key := uniqueKey(original)

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=31536000"),
		Metadata: map[string]string{
			"original-filename": original,
		},
	})
	if err != nil {
		return Object{}, fmt.Errorf("storage: put object %s: %w", key, err)
	}

	obj := Object{Key: key, URL: s.publicURL + "/" + key}
	s.logger.Printf("[Storage] uploaded | key=%s url=%s", obj.Key, obj.URL)
	return obj, nil
}

func (s *R2Store) Delete(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, errors.New("storage: empty key")
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Printf("[Storage] delete failed | key=%s err=%v", key, err)
		return false, err
	}
	return true, nil
}

func uniqueKey(original string) string {
	ext := filepath.Ext(original)
	if ext == "" {
		ext = ".pdf"
	}
	return uuid.New().String() + ext
}
