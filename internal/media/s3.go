package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// s3API is the subset of *s3.S3 used here.
type s3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Uploader stores images as public-read objects in a bucket.
type S3Uploader struct {
	client     s3API
	bucketName string
	region     string
	folder     string
	newKey     func() string
}

// NewS3Uploader creates an uploader with static credentials. Empty
// credentials fall back to the SDK's default chain.
func NewS3Uploader(region, accessKeyID, secretAccessKey, bucketName, folder string, timeout time.Duration) (*S3Uploader, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("s3 bucket name must not be empty")
	}

	cfg := &aws.Config{
		Region:     aws.String(region),
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if accessKeyID != "" && secretAccessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Uploader{
		client:     s3.New(sess),
		bucketName: bucketName,
		region:     region,
		folder:     folder,
		newKey:     func() string { return uuid.NewString() },
	}, nil
}

// Upload puts the object under <folder>/<uuid><ext> and returns its URL.
func (u *S3Uploader) Upload(ctx context.Context, file File) (string, error) {
	key := u.newKey() + Extension(file.ContentType)
	if folder := strings.Trim(u.folder, "/"); folder != "" {
		key = folder + "/" + key
	}

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHost, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucketName, u.region, key), nil
}
