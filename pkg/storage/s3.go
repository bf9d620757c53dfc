package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the subset of the S3 client used by S3Storage.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Storage implements Storage on S3-compatible object storage.
type S3Storage struct {
	api     ObjectAPI
	bucket  string
	maxSize int64
}

// New creates an S3Storage with static credentials from cfg.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Storage{
		api:     s3.New(s3.Options{}, opts...),
		bucket:  cfg.Bucket,
		maxSize: cfg.MaxObjectSize,
	}, nil
}

// NewWithAPI creates an S3Storage over an existing client.
// maxSize <= 0 uses DefaultMaxObjectSize.
func NewWithAPI(api ObjectAPI, bucket string, maxSize int64) *S3Storage {
	if maxSize <= 0 {
		maxSize = DefaultMaxObjectSize
	}
	return &S3Storage{api: api, bucket: bucket, maxSize: maxSize}
}

// MaxObjectSize returns the configured read limit.
func (s *S3Storage) MaxObjectSize() int64 {
	return s.maxSize
}

// Get retrieves an object from S3.
func (s *S3Storage) Get(ctx context.Context, key string) (*Object, io.ReadCloser, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, nil, wrapS3Error(err, ErrReadFailed)
	}

	return &Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, out.Body, nil
}

// Head returns object metadata from S3.
func (s *S3Storage) Head(ctx context.Context, key string) (*Object, error) {
	out, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrNotFound)
	}

	return &Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

var _ Storage = (*S3Storage)(nil)
