package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/recruitkeeper/internal/netx"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}
)

// S3Config points S3Storage at a bucket. PublicBaseURL defaults to Endpoint.
type S3Config struct {
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

// S3Storage uploads attachments through presigned PUT requests and serves
// them from <PublicBaseURL>/<Bucket>/<key>.
type S3Storage struct {
	cfg  S3Config
	http *http.Client
}

func NewS3Storage(cfg S3Config, httpClient *http.Client) *S3Storage {
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = cfg.Endpoint
	}
	return &S3Storage{cfg: cfg, http: httpClient}
}

func (s *S3Storage) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

func (s *S3Storage) Upload(ctx context.Context, name string, content []byte, contentType string) (string, error) {
	c, err := s.client(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 config: %w", err)
	}

	key := s.cfg.Prefix + name
	in := &s3.PutObjectInput{Bucket: aws.String(s.cfg.Bucket), Key: aws.String(key)}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(newS3PresignClient(c), ctx, in, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	if err := netx.PutPresigned(ctx, s.http, req.URL, content, contentType); err != nil {
		return "", err
	}
	return s.address(key), nil
}

func (s *S3Storage) Delete(ctx context.Context, address string) error {
	if !s.Owns(address) {
		return nil
	}
	key := strings.TrimPrefix(address, s.address(""))

	c, err := s.client(ctx)
	if err != nil {
		return fmt.Errorf("s3 config: %w", err)
	}
	if _, err := deleteObject(c, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Storage) Owns(address string) bool {
	prefix := s.address("")
	return len(address) > len(prefix) && strings.HasPrefix(address, prefix)
}

func (s *S3Storage) address(key string) string {
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + s.cfg.Bucket + "/" + key
}
