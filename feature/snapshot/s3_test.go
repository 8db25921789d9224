package snapshot_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"follower-tracker/core/storage/mocks"
	"follower-tracker/feature/snapshot"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestS3Store(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadParsesObject", func(t *testing.T) {
		client := new(mocks.Client)
		store := snapshot.NewS3Store(client, "followers", "snapshots")

		body := io.NopCloser(strings.NewReader("alice\nbob\n"))
		client.On("GetObject", ctx, "followers", "snapshots/2026-243", mock.Anything).
			Return(body, nil)

		set, err := store.Load(ctx, snapshot.DayKey("2026-243"))
		assert.NoError(t, err)
		assert.Equal(t, snapshot.NewSet([]string{"alice", "bob"}), set)
		client.AssertExpectations(t)
	})

	t.Run("LoadMissingObjectIsEmptySet", func(t *testing.T) {
		client := new(mocks.Client)
		store := snapshot.NewS3Store(client, "followers", "snapshots")

		client.On("GetObject", ctx, "followers", "snapshots/2026-001", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		set, err := store.Load(ctx, snapshot.DayKey("2026-001"))
		assert.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("SaveCreatesBucketAndUploads", func(t *testing.T) {
		client := new(mocks.Client)
		store := snapshot.NewS3Store(client, "followers", "snapshots")

		client.On("BucketExists", ctx, "followers").Return(false, nil)
		client.On("MakeBucket", ctx, "followers", mock.Anything).Return(nil)
		client.On("PutObject", ctx, "followers", "snapshots/2026-243",
			mock.Anything, int64(len("alice\nbob\n")), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		err := store.Save(ctx, snapshot.DayKey("2026-243"), []string{"alice", "bob"})
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("ExistsViaStat", func(t *testing.T) {
		client := new(mocks.Client)
		store := snapshot.NewS3Store(client, "followers", "snapshots")

		client.On("StatObject", ctx, "followers", "snapshots/2026-243", mock.Anything).
			Return(minio.ObjectInfo{Key: "snapshots/2026-243"}, nil)
		client.On("StatObject", ctx, "followers", "snapshots/2026-242", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		exists, err := store.Exists(ctx, snapshot.DayKey("2026-243"))
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.Exists(ctx, snapshot.DayKey("2026-242"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListFiltersAndSorts", func(t *testing.T) {
		client := new(mocks.Client)
		store := snapshot.NewS3Store(client, "followers", "snapshots")

		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "snapshots/2026-243"}
		ch <- minio.ObjectInfo{Key: "snapshots/readme.md"}
		ch <- minio.ObjectInfo{Key: "snapshots/2026-242"}
		close(ch)

		client.On("ListObjects", ctx, "followers", mock.Anything).
			Return((<-chan minio.ObjectInfo)(ch))

		keys, err := store.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []snapshot.DayKey{"2026-242", "2026-243"}, keys)
	})
}
