package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"photomi/api/internal/config"
	"photomi/api/internal/imaging"
	"photomi/api/internal/models"
	"photomi/api/internal/repository"
)

// PhotoView is one listing row: the catalog record plus time-limited
// read URLs for both artifacts. A URL is empty when presigning failed
// for that record.
type PhotoView struct {
	ID           int64
	Filename     string
	ThumbnailURL string
	OriginalURL  string
	CreatedAt    time.Time
}

// PhotoService runs the ingestion pipeline and the catalog-facing
// listing and deletion operations. The pipeline is strictly sequential
// within one request: decode, extract date, thumbnail, upload both
// artifacts, persist. No stage is retried.
type PhotoService struct {
	catalog       Catalog
	store         ArtifactStore
	thumbWidth    int
	thumbHeight   int
	presignExpiry time.Duration
	log           zerolog.Logger
}

// NewPhotoService wires the pipeline. store may be nil when object
// storage was not configured at startup; every storage-dependent call
// then fails with ErrStorageUnavailable.
func NewPhotoService(catalog Catalog, store ArtifactStore, cfg *config.AppConfig, log zerolog.Logger) *PhotoService {
	return &PhotoService{
		catalog:       catalog,
		store:         store,
		thumbWidth:    cfg.Upload.ThumbnailMaxWidth,
		thumbHeight:   cfg.Upload.ThumbnailMaxHeight,
		presignExpiry: cfg.Storage.PresignExpiry,
		log:           log,
	}
}

// Ingest processes one upload end to end and returns the persisted
// record. On upload failure nothing is written to the catalog and no
// cleanup of a partially uploaded artifact is attempted; on persist
// failure both uploaded artifacts are orphaned. Both windows are
// logged, not hidden.
func (s *PhotoService) Ingest(ctx context.Context, data []byte, filename string, uploadTime time.Time) (models.Photo, error) {
	if s.store == nil {
		return models.Photo{}, ErrStorageUnavailable
	}

	info, err := imaging.Decode(data)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %s", ErrDecodeFailed, err)
	}

	capturedAt := uploadTime
	if t, ok := imaging.CapturedAt(info.EXIF); ok {
		capturedAt = t
	}

	// Thumbnail from the original bytes, not from a re-encoded copy.
	thumb, err := imaging.Thumbnail(data, s.thumbWidth, s.thumbHeight)
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %s", ErrEncodeFailed, err)
	}

	originalKey, thumbKey := deriveKeys(filename, uploadTime)
	contentType := "image/" + info.Format

	if err := s.store.Put(ctx, originalKey, data, contentType); err != nil {
		return models.Photo{}, fmt.Errorf("%w: original %s: %s", ErrUploadFailed, originalKey, err)
	}
	if err := s.store.Put(ctx, thumbKey, thumb, contentType); err != nil {
		s.log.Warn().Str("key", originalKey).Msg("original left behind after thumbnail upload failure")
		return models.Photo{}, fmt.Errorf("%w: thumbnail %s: %s", ErrUploadFailed, thumbKey, err)
	}

	photo, err := s.catalog.Insert(ctx, models.Photo{
		Filename:          originalKey,
		ThumbnailFilename: thumbKey,
		CreatedAt:         capturedAt,
	})
	if err != nil {
		s.log.Warn().
			Str("original", originalKey).
			Str("thumbnail", thumbKey).
			Msg("artifacts orphaned after catalog insert failure")
		return models.Photo{}, fmt.Errorf("%w: insert: %s", ErrPersistFailed, err)
	}

	s.log.Info().
		Int64("id", photo.ID).
		Str("key", originalKey).
		Int("width", info.Width).
		Int("height", info.Height).
		Time("captured_at", capturedAt).
		Msg("photo ingested")

	return photo, nil
}

// List returns a page of photos, newest capture time first, each with
// presigned read URLs. A presign failure degrades that record's URL to
// empty instead of failing the page.
func (s *PhotoService) List(ctx context.Context, skip, limit int) ([]PhotoView, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if skip < 0 {
		skip = 0
	}
	// An explicit zero limit means an empty page; only a negative
	// (unset) limit falls back to the default window.
	if limit < 0 {
		limit = 100
	}

	photos, err := s.catalog.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %s", ErrPersistFailed, err)
	}

	views := make([]PhotoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, PhotoView{
			ID:           photo.ID,
			Filename:     photo.Filename,
			OriginalURL:  s.presign(ctx, photo.Filename),
			ThumbnailURL: s.presign(ctx, photo.ThumbnailFilename),
			CreatedAt:    photo.CreatedAt,
		})
	}
	return views, nil
}

// Delete removes the catalog row and both artifacts. Artifact removal
// is best effort: a failed removal is logged and deletion proceeds,
// trading orphaned blobs for forward progress.
func (s *PhotoService) Delete(ctx context.Context, id int64) error {
	if s.store == nil {
		return ErrStorageUnavailable
	}

	photo, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return fmt.Errorf("%w: get: %s", ErrPersistFailed, err)
	}

	for _, key := range []string{photo.Filename, photo.ThumbnailFilename} {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("artifact removal failed, blob may be orphaned")
		}
	}

	if err := s.catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete: %s", ErrPersistFailed, err)
	}

	s.log.Info().Int64("id", id).Msg("photo deleted")
	return nil
}

func (s *PhotoService) presign(ctx context.Context, key string) string {
	url, err := s.store.PresignedURL(ctx, key, s.presignExpiry)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("presign failed")
		return ""
	}
	return url
}

// deriveKeys builds the storage keys for one ingestion: the base name
// gets a second-resolution timestamp suffix, so repeated uploads of
// the same file name collide only within the same second (the catalog
// unique constraint surfaces that case as a persist failure).
func deriveKeys(filename string, uploadTime time.Time) (originalKey, thumbnailKey string) {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	stem := base + "_" + uploadTime.Format("20060102_150405")
	return stem + ext, stem + "_thumb" + ext
}
