package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"

	"follower-tracker/core/storage"

	"github.com/minio/minio-go/v7"
)

// S3Store keeps one object per day key under a bucket prefix.
type S3Store struct {
	client storage.Client
	bucket string
	prefix string
}

// NewS3Store creates an object-storage-backed snapshot store.
func NewS3Store(client storage.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) objectName(key DayKey) string {
	return path.Join(s.prefix, key.String())
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Load reads the snapshot object for the day. A missing object yields an
// empty set, not an error.
func (s *S3Store) Load(ctx context.Context, key DayKey) (Set, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// minio defers the actual request until the first read, so a
		// missing object can surface here as well.
		if isNotFound(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return parseLines(string(data)), nil
}

// Exists reports whether a snapshot object exists for the day.
func (s *S3Store) Exists(ctx context.Context, key DayKey) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.objectName(key), minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat snapshot %s: %w", key, err)
	}
	return true, nil
}

// Save uploads the followers one per line, overwriting any existing object.
func (s *S3Store) Save(ctx context.Context, key DayKey, followers []string) error {
	if err := s.EnsureBucket(ctx); err != nil {
		return err
	}
	data := []byte(renderLines(followers))
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("failed to put snapshot %s: %w", key, err)
	}
	return nil
}

// List returns the day keys of all snapshot objects in ascending order.
func (s *S3Store) List(ctx context.Context) ([]DayKey, error) {
	listPrefix := s.prefix
	if listPrefix != "" {
		listPrefix += "/"
	}

	var keys []DayKey
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", info.Err)
		}
		name := path.Base(info.Key)
		if !IsDayKey(name) {
			continue
		}
		keys = append(keys, DayKey(name))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
