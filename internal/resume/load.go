package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoObjectStore is returned for s3:// locations when no S3 client is
// configured.
var ErrNoObjectStore = errors.New("s3 location given but no object store is configured")

// ObjectGetter is the subset of the S3 API the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures an S3 or S3-compatible client.
type S3Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds an S3 client with static credentials. A non-empty
// Endpoint points it at an S3-compatible store such as R2 or MinIO.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
		awsconfig.WithRegion(opts.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Loader reads resumes from the local filesystem or an object store.
type Loader struct {
	objects ObjectGetter
}

// NewLoader creates a Loader. objects may be nil when only local files
// are used.
func NewLoader(objects ObjectGetter) *Loader {
	return &Loader{objects: objects}
}

// ParseS3URI splits "s3://bucket/key" into its parts.
func ParseS3URI(location string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(location, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// Load reads and extracts the resume at location, a file path or an
// s3://bucket/key URI.
func (l *Loader) Load(ctx context.Context, location string) (*Document, error) {
	if bucket, key, ok := ParseS3URI(location); ok {
		data, err := l.download(ctx, bucket, key)
		if err != nil {
			return nil, err
		}
		return ReadDocument(key, bytes.NewReader(data))
	}
	if strings.HasPrefix(location, "s3://") {
		return nil, fmt.Errorf("invalid s3 location %q (want s3://bucket/key)", location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("opening resume: %w", err)
	}
	defer f.Close()
	return ReadDocument(location, f)
}

func (l *Loader) download(ctx context.Context, bucket, key string) ([]byte, error) {
	if l.objects == nil {
		return nil, ErrNoObjectStore
	}
	out, err := l.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}
