package mappings

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"item-translator/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageLoader fetches a mapping document from object storage.
type StorageLoader struct {
	Client storage.Client
	Bucket string
	Object string
}

func (l StorageLoader) Load(ctx context.Context) (*Tables, error) {
	obj, err := l.Client.GetObject(ctx, l.Bucket, l.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get mappings object %s: %w", l.Object, err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings object %s: %w", l.Object, err)
	}
	return ParseDocument(b, FormatOf(l.Object))
}

// Publish uploads tables as a document to bucket, creating the bucket when
// it does not exist. The format follows the object name extension.
func Publish(ctx context.Context, client storage.Client, bucket, object string, t *Tables) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	f := FormatOf(object)
	b, err := EncodeDocument(t, f)
	if err != nil {
		return fmt.Errorf("failed to encode mappings: %w", err)
	}
	contentType := "application/json"
	if f == FormatYAML {
		contentType = "application/yaml"
	}
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(b), int64(len(b)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload mappings object %s: %w", object, err)
	}
	return nil
}
