package publish

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vattr/internal/errors"
)

// PutObjectAPI is the subset of *s3.Client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes documents to an S3 bucket.
type S3Store struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Store creates a store for bucket. Keys are prefixed with prefix.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "no-cache",
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (s *S3Store) WithCacheControl(v string) *S3Store {
	s.cacheControl = v
	return s
}

// Put uploads html as an HTML object and returns its s3:// location.
func (s *S3Store) Put(ctx context.Context, key string, html []byte) (string, error) {
	key = s.prefix + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(html),
		ContentType:  aws.String("text/html; charset=utf-8"),
		CacheControl: aws.String(s.cacheControl),
		Metadata: map[string]string{
			"generator":   "vattr",
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E300").WithDetail("s3 upload to " + s.bucket + " failed").Wrap(err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// NewS3Client creates an S3 client for region using credentials from the
// standard AWS_* environment variables. endpoint may be empty.
func NewS3Client(region, endpoint string) *s3.Client {
	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("E300").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
	}
	return creds, nil
}
