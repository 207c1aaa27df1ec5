package sink

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// PutObjectAPI is the part of *s3.Client used by S3.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 publishes objects to a bucket.
//
// Example usage:
//
//	client := sink.NewS3Client(sink.S3Options{Region: "eu-west-1"})
//	s := sink.NewS3(client, "my-site", "pages/")
//	err := sink.Print(ctx, s, "index.html", page)
type S3 struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	contentType  string
	cacheControl string
}

// NewS3 creates a sink writing to bucket. Object keys are prefix + name.
func NewS3(client PutObjectAPI, bucket, prefix string) *S3 {
	return &S3{
		client:      client,
		bucket:      bucket,
		prefix:      prefix,
		contentType: "text/html; charset=utf-8",
	}
}

// WithContentType sets the Content-Type stored with each object.
func (s *S3) WithContentType(ct string) *S3 {
	if ct != "" {
		s.contentType = ct
	}
	return s
}

// WithCacheControl sets the Cache-Control stored with each object.
func (s *S3) WithCacheControl(cc string) *S3 {
	s.cacheControl = cc
	return s
}

// Key returns the object key for name.
func (s *S3) Key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

// Publish uploads body as a single PutObject.
func (s *S3) Publish(ctx context.Context, name string, body []byte) error {
	key := s.Key(name)
	if key == "" || strings.HasSuffix(key, "/") {
		return errors.New(errors.CodeSinkTarget).
			WithDetailf("object key %q names a directory", key)
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(s.contentType),
		Metadata: map[string]string{
			"generator": "htmlc",
		},
	}
	if s.cacheControl != "" {
		in.CacheControl = aws.String(s.cacheControl)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return errors.New(errors.CodeSinkUpload).
			WithDetailf("s3://%s/%s", s.bucket, key).
			Wrap(err)
	}
	return nil
}

// S3Options configures NewS3Client.
type S3Options struct {
	Region string

	// Endpoint overrides the service endpoint, for S3-compatible stores.
	// Path-style addressing is used when it is set.
	Endpoint string

	// Prefix and ContentType apply to objects published through Open.
	Prefix      string
	ContentType string
}

// NewS3Client builds an S3 client that reads credentials from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(opts S3Options) *s3.Client {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}
	o := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New(errors.CodeSinkUpload).
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
