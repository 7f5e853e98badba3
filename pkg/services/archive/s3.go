package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/wakestate/pkg/services/config"
	"github.com/rs/zerolog"
)

// DefaultRegion is used when neither the config nor the AWS profile names one.
const DefaultRegion = "us-east-1"

// Archiver copies an export off the device and returns the stored object key.
type Archiver interface {
	Archive(ctx context.Context, name string, body []byte) (string, error)
}

// ObjectPutter is the part of the S3 client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewS3Archiver(client ObjectPutter, bucket, prefix string) (Archiver, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}
	return &s3Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.TrimPrefix(prefix, "/"),
	}, nil
}

// NewFromConfig builds an S3 archiver from the default AWS credential chain.
func NewFromConfig(ctx context.Context, cfg config.ArchiveConfig) (Archiver, error) {
	awsCfg, err := LoadConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(*awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = awssdk.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Archiver(client, cfg.Bucket, cfg.Prefix)
}

func LoadConfig(ctx context.Context, region string) (*awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithDefaultRegion(DefaultRegion),
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &awsCfg, nil
}

func (a *s3Archiver) Archive(ctx context.Context, name string, body []byte) (string, error) {
	key := path.Join(a.prefix, name)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(a.bucket),
		Key:         awssdk.String(key),
		Body:        bytes.NewReader(body),
		ContentType: awssdk.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", a.bucket, key, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("bucket", a.bucket).
		Str("key", key).
		Int("bytes", len(body)).
		Msg("export archived")
	return key, nil
}
