package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/config"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
)

// Object storage folders. One bucket, one prefix per content kind.
const (
	StorageFolderAvatars    = "avatars"
	StorageFolderPostImages = "post-images"
	StorageFolderBlogImages = "blog-images"
)

// UploadObject stores body in the configured S3 bucket under
// "<folder>/<random uuid><ext>" and returns the public URL. Requires:
//   - S3_BUCKET: bucket name
//   - S3_PUBLIC_BASE_URL: optional; defaults to the virtual-hosted bucket URL
//
// AWS credentials and region come from the default SDK chain.
func UploadObject(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	cfg := config.New()

	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return "", errs.NewEnvironmentVariableError("S3_BUCKET")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", errs.NewConfigError("aws", err)
	}
	client := s3.NewFromConfig(awsCfg)

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), strings.ToLower(path.Ext(filename)))

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errs.NewObjectUploadError(bucket, key, err)
	}

	url := publicObjectURL(cfg, bucket, awsCfg.Region, key)
	log.Info().Str("bucket", bucket).Str("key", key).Msg("Uploaded object to storage")
	return url, nil
}

func publicObjectURL(cfg map[string]string, bucket, region, key string) string {
	base := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
