// Package publish uploads enriched output files to S3.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader is the subset of the S3 client used for publishing.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Uploader loads the default AWS configuration and returns an S3 client.
func NewS3Uploader(ctx context.Context, region string) (Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// ObjectKey joins the key prefix and file name with a single slash.
func ObjectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Publish uploads each named file from dir to bucket. Files that do not exist are
// logged and skipped. It returns the number of objects written and stops at the
// first upload error.
func Publish(ctx context.Context, up Uploader, bucket, prefix, dir string, names []string) (int, error) {
	if bucket == "" {
		return 0, errors.New("S3_BUCKET_NAME must be set")
	}

	uploaded := 0
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("Skipping %s: not found in %s", name, dir)
				continue
			}
			return uploaded, err
		}

		key := ObjectKey(prefix, name)
		_, err = up.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return uploaded, fmt.Errorf("failed to upload %s to s3://%s/%s: %w", name, bucket, key, err)
		}
		uploaded++
	}
	return uploaded, nil
}
