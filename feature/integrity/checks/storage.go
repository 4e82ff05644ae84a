package checks

import (
	"context"
	"fmt"

	"item-translator/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageReport tells whether the mapping document is present in the bucket.
type StorageReport struct {
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
	Object       string `json:"object"`
	ObjectExists bool   `json:"object_exists"`
	Status       string `json:"status"` // "ok", "error"
}

// CheckStorage looks for the bucket and the mapping object.
func CheckStorage(ctx context.Context, client storage.Client, bucket, object string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Object: object, Status: "error"}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    object,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if obj.Key == object {
			report.ObjectExists = true
		}
	}
	if report.ObjectExists {
		report.Status = "ok"
	}
	return report, nil
}

// FixStorage creates the bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket string) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}
