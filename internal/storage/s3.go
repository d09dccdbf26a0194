package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by S3Client.
type S3API interface {
	ListObjects(ctx context.Context, params *s3.ListObjectsInput, optFns ...func(*s3.Options)) (*s3.ListObjectsOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3Client implements ObjectStorage on Amazon S3 with server-side copies.
type S3Client struct {
	api      S3API
	pageSize int32
}

// NewS3Client wraps api. pageSize bounds the single listing page; values
// outside (0, DefaultListPageSize] fall back to DefaultListPageSize.
func NewS3Client(api S3API, pageSize int) *S3Client {
	if pageSize <= 0 || pageSize > DefaultListPageSize {
		pageSize = DefaultListPageSize
	}
	return &S3Client{
		api:      api,
		pageSize: int32(pageSize),
	}
}

// ListObjects issues one ListObjects call and returns its contents. A
// truncated result is not followed.
func (c *S3Client) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	out, err := c.api.ListObjects(ctx, &s3.ListObjectsInput{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(c.pageSize),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 list %s failed: %w", bucket, err)
	}
	if out == nil {
		return nil, nil
	}

	results := make([]ObjectInfo, 0, len(out.Contents))
	for _, object := range out.Contents {
		results = append(results, ObjectInfo{
			Key:  aws.ToString(object.Key),
			Size: aws.ToInt64(object.Size),
		})
	}
	return results, nil
}

// CopyObject copies srcBucket/srcKey to dstBucket/dstKey inside S3.
func (c *S3Client) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	_, err := c.api.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(copySource(srcBucket, srcKey)),
	})
	if err != nil {
		return fmt.Errorf("s3 copy %s/%s to %s/%s failed: %w", srcBucket, srcKey, dstBucket, dstKey, err)
	}
	return nil
}

// copySource renders the URL-encoded "bucket/key" value S3 expects. Every
// byte of a key segment other than A-Z a-z 0-9 - _ . ~ is percent-encoded;
// the "/" separators are kept. S3 decodes a bare "+" as a space.
func copySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return bucket + "/" + strings.Join(segments, "/")
}

var _ ObjectStorage = (*S3Client)(nil)
