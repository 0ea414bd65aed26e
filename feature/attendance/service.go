package attendance

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"roster-manager/core/roster"
	"roster-manager/core/sheet"
	"roster-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by snapshot operations when no storage
// client is configured. The rest of the feature works without storage.
var ErrStorageDisabled = errors.New("snapshot storage is not configured")

// snapshotPrefix is the object key prefix for archived roster snapshots.
const snapshotPrefix = "snapshots/"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SnapshotInfo describes one archived roster snapshot.
type SnapshotInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service owns the session roster and its workbook boundaries.
type Service struct {
	store     *roster.Store
	client    storage.Client
	bucket    string
	sheetName string
	logger    *zap.Logger

	// now supplies snapshot object timestamps; overridable in tests.
	now func() time.Time
}

// NewService creates a new roster service. client may be nil, which
// disables snapshot archival but nothing else.
func NewService(store *roster.Store, client storage.Client, bucket, sheetName string, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		bucket:    bucket,
		sheetName: sheetName,
		logger:    logger,
		now:       time.Now,
	}
}

// LoadFromWorkbook parses a roster workbook and replaces the current
// roster with it. Returns the number of loaded records.
func (s *Service) LoadFromWorkbook(r io.Reader) (int, error) {
	rows, err := sheet.ParseRoster(r)
	if err != nil {
		return 0, err
	}
	return s.store.Load(rows), nil
}

// CheckIn marks an attendee as present.
func (s *Service) CheckIn(id string) (roster.Outcome, error) {
	return s.store.CheckIn(id)
}

// Register appends a walk-in attendee.
func (s *Service) Register(id, name string, aff roster.Affiliation) (roster.Record, bool, error) {
	return s.store.Register(id, name, aff)
}

// Snapshot returns the current roster records.
func (s *Service) Snapshot() []roster.Record {
	return s.store.Snapshot()
}

// Counts returns the present count and the roster size.
func (s *Service) Counts() (present, total int) {
	return s.store.Counts()
}

// Export renders the current roster as an xlsx workbook to w.
func (s *Service) Export(w io.Writer) error {
	return sheet.WriteRoster(w, s.store.Snapshot(), s.sheetName)
}

// ArchiveSnapshot exports the current roster and uploads it to the
// snapshot bucket. Returns the object name of the stored snapshot.
func (s *Service) ArchiveSnapshot(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		return "", err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", err
		}
		s.logger.Info("Created snapshot bucket", zap.String("bucket", s.bucket))
	}

	name := snapshotPrefix + "roster_" + s.now().Format("20060102_1504") + ".xlsx"
	_, err = s.client.PutObject(ctx, s.bucket, name, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// ListSnapshots lists the archived roster snapshots.
func (s *Service) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    snapshotPrefix,
		Recursive: true,
	})

	infos := make([]SnapshotInfo, 0)
	for obj := range objects {
		if obj.Err != nil {
			return nil, obj.Err
		}
		infos = append(infos, SnapshotInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

// DownloadSnapshot opens one archived snapshot by its bare name
// (without the snapshot prefix). The caller closes the reader.
func (s *Service) DownloadSnapshot(ctx context.Context, name string) (io.ReadCloser, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return s.client.GetObject(ctx, s.bucket, snapshotPrefix+name, minio.GetObjectOptions{})
}

// DeleteSnapshot removes one archived snapshot by its bare name
// (without the snapshot prefix).
func (s *Service) DeleteSnapshot(ctx context.Context, name string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return s.client.RemoveObject(ctx, s.bucket, snapshotPrefix+name, minio.RemoveObjectOptions{})
}
