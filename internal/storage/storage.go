package storage

import "context"

// DefaultListPageSize is the largest page a single S3 listing call returns.
const DefaultListPageSize = 1000

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the S3-compatible operations the copy task needs.
//
// ListObjects returns only the first listing page of bucket. Objects beyond
// that page are not returned.
type ObjectStorage interface {
	ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error)
	CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
}
