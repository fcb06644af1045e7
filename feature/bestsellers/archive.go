package bestsellers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"bestseller-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotArchived is returned when no snapshot is stored for a date.
var ErrNotArchived = errors.New("snapshot not archived")

// Archive keeps raw snapshots in object storage under <prefix>/<published date>.json.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
}

// NewArchive creates an archive over client.
func NewArchive(client storage.Client, bucket, prefix string) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object name for a published date.
func (a *Archive) Key(date string) string {
	return path.Join(a.prefix, date+".json")
}

// Save stores a snapshot, creating the bucket when needed. It returns the object name.
func (a *Archive) Save(ctx context.Context, date string, data []byte) (string, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
	}

	key := a.Key(date)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Load reads the snapshot archived for date.
func (a *Archive) Load(ctx context.Context, date string) ([]byte, error) {
	key := a.Key(date)
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.mapErr(key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, a.mapErr(key, err)
	}
	return data, nil
}

// Dates lists archived published dates, oldest first.
func (a *Archive) Dates(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: a.prefix + "/", Recursive: true}
	var dates []string
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", a.bucket, obj.Err)
		}
		name := path.Base(obj.Key)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

func (a *Archive) mapErr(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotArchived, key)
	}
	return fmt.Errorf("failed to read %s: %w", key, err)
}
