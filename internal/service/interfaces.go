package service

import (
	"context"
	"time"

	"photomi/api/internal/models"
)

// Catalog is the relational store holding one row per ingested photo.
type Catalog interface {
	Insert(ctx context.Context, photo models.Photo) (models.Photo, error)
	GetByID(ctx context.Context, id int64) (models.Photo, error)
	List(ctx context.Context, limit, offset int) ([]models.Photo, error)
	Delete(ctx context.Context, id int64) error
}

// ArtifactStore is the object store holding the original and thumbnail
// blobs, addressed by opaque keys.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
