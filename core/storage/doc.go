// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the small interface the snapshot archive needs:
// checking and creating the bucket, uploading a snapshot, reading one back and listing what
// has been archived. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
