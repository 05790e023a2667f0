package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PythonShinobi/Otaku-Store/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBucketRequired = errors.New("media: S3_BUCKET is required")

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores images in an S3-compatible bucket.
type S3Uploader struct {
	client  putObjectAPI
	bucket  string
	baseURL string
}

func NewS3Uploader(ctx context.Context, cfg config.Media) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(client, cfg), nil
}

func newS3Uploader(client putObjectAPI, cfg config.Media) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}
}

func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body io.Reader,
) (string, error) {

	in := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("media: put %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}

func publicBaseURL(cfg config.Media) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}
