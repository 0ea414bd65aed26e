package attendance

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"roster-manager/core/roster"
	"roster-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testService(t *testing.T) (*Service, *mocks.Client) {
	t.Helper()
	mockClient := new(mocks.Client)
	svc := NewService(roster.NewStore(), mockClient, "test-bucket", "Attendance", zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 5, 24, 10, 30, 0, 0, time.Local) }
	return svc, mockClient
}

func TestArchiveSnapshot(t *testing.T) {
	svc, mockClient := testService(t)
	loadRoster(svc, roster.Row{ID: "A1", Name: "Tanaka"})

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "snapshots/roster_20250524_1030.xlsx",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	name, err := svc.ArchiveSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snapshots/roster_20250524_1030.xlsx", name)
	mockClient.AssertExpectations(t)
}

func TestArchiveSnapshotCreatesBucket(t *testing.T) {
	svc, mockClient := testService(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	_, err := svc.ArchiveSnapshot(context.Background())
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestArchiveSnapshotStorageError(t *testing.T) {
	svc, mockClient := testService(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	_, err := svc.ArchiveSnapshot(context.Background())
	assert.Error(t, err)
}

func TestSnapshotOperationsWithoutStorage(t *testing.T) {
	svc := NewService(roster.NewStore(), nil, "", "Attendance", zap.NewNop())

	_, err := svc.ArchiveSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)

	_, err = svc.ListSnapshots(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)

	_, err = svc.DownloadSnapshot(context.Background(), "x.xlsx")
	assert.ErrorIs(t, err, ErrStorageDisabled)

	err = svc.DeleteSnapshot(context.Background(), "x.xlsx")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestListSnapshots(t *testing.T) {
	svc, mockClient := testService(t)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "snapshots/roster_20250524_1030.xlsx", Size: 1234}
	ch <- minio.ObjectInfo{Key: "snapshots/roster_20250524_1100.xlsx", Size: 2345}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	infos, err := svc.ListSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "snapshots/roster_20250524_1030.xlsx", infos[0].Name)
	assert.EqualValues(t, 1234, infos[0].Size)
}

func TestListSnapshotsObjectError(t *testing.T) {
	svc, mockClient := testService(t)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := svc.ListSnapshots(context.Background())
	assert.Error(t, err)
}

func TestDownloadSnapshot(t *testing.T) {
	svc, mockClient := testService(t)

	content := []byte("workbook bytes")
	mockClient.On("GetObject", mock.Anything, "test-bucket",
		"snapshots/roster_20250524_1030.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(content)), nil)

	obj, err := svc.DownloadSnapshot(context.Background(), "roster_20250524_1030.xlsx")
	require.NoError(t, err)
	defer obj.Close()

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	mockClient.AssertExpectations(t)
}

func TestDeleteSnapshot(t *testing.T) {
	svc, mockClient := testService(t)

	mockClient.On("RemoveObject", mock.Anything, "test-bucket",
		"snapshots/roster_20250524_1030.xlsx", mock.Anything).Return(nil)

	err := svc.DeleteSnapshot(context.Background(), "roster_20250524_1030.xlsx")
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}
