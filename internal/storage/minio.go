package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig encapsulates the connection info for S3-compatible storage
// reached through minio-go.
type MinioConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Region       string
	UseSSL       bool
	ListPageSize int
}

// MinioAPI is the subset of *minio.Client used by MinioClient.
type MinioAPI interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
}

// MinioClient implements ObjectStorage for MinIO and other S3-compatible services.
type MinioClient struct {
	api      MinioAPI
	pageSize int
}

// NewMinioClient builds a MinioClient from cfg.
func NewMinioClient(cfg MinioConfig) (*MinioClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials must be provided")
	}

	// minio-go wants a bare host[:port]; the scheme is driven by UseSSL
	endpoint := strings.TrimSpace(cfg.Endpoint)
	useSSL := cfg.UseSSL
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
		useSSL = true
	case strings.HasPrefix(endpoint, "http://"):
		endpoint = strings.TrimPrefix(endpoint, "http://")
		useSSL = false
	}
	endpoint = strings.TrimSuffix(strings.TrimPrefix(endpoint, "//"), "/")

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client init failed: %w", err)
	}

	return NewMinioClientWithAPI(client, cfg.ListPageSize), nil
}

// NewMinioClientWithAPI wraps an existing client.
func NewMinioClientWithAPI(api MinioAPI, pageSize int) *MinioClient {
	if pageSize <= 0 || pageSize > DefaultListPageSize {
		pageSize = DefaultListPageSize
	}
	return &MinioClient{
		api:      api,
		pageSize: pageSize,
	}
}

// ListObjects reads at most one page of objects from bucket. minio-go pages
// transparently, so the listing is cancelled once the page is full.
func (c *MinioClient) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]ObjectInfo, 0)
	objects := c.api.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Recursive: true,
		MaxKeys:   c.pageSize,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("minio list %s failed: %w", bucket, object.Err)
		}
		results = append(results, ObjectInfo{
			Key:  object.Key,
			Size: object.Size,
		})
		if len(results) == c.pageSize {
			break
		}
	}
	return results, nil
}

// CopyObject performs a server-side copy.
func (c *MinioClient) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	_, err := c.api.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: dstBucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: srcBucket, Object: srcKey},
	)
	if err != nil {
		return fmt.Errorf("minio copy %s/%s to %s/%s failed: %w", srcBucket, srcKey, dstBucket, dstKey, err)
	}
	return nil
}

var _ ObjectStorage = (*MinioClient)(nil)
