// Package storage wraps the MinIO client used to keep mapping documents in
// S3-compatible object storage.
//
// The Client interface covers the calls the application makes (bucket
// checks, uploads, downloads and listings) so tests can substitute the
// testify mock in core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "mappings/1.20.5-1.20.3.yaml", minio.GetObjectOptions{})
package storage
