package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"photomi/api/internal/models"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

// Insert stores the record and returns it with the database-assigned id.
func (r *PhotoRepository) Insert(ctx context.Context, photo models.Photo) (models.Photo, error) {
	const query = `
		INSERT INTO photos (filename, thumbnail_filename, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	row := r.pool.QueryRow(ctx, query, photo.Filename, photo.ThumbnailFilename, photo.CreatedAt)
	if err := row.Scan(&photo.ID); err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (models.Photo, error) {
	const query = `
		SELECT id, filename, thumbnail_filename, created_at
		FROM photos WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var photo models.Photo
	if err := row.Scan(&photo.ID, &photo.Filename, &photo.ThumbnailFilename, &photo.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Photo{}, ErrPhotoNotFound
		}
		return models.Photo{}, err
	}
	return photo, nil
}

// List returns photos newest first. Records sharing a created_at keep
// whatever order the database yields.
func (r *PhotoRepository) List(ctx context.Context, limit, offset int) ([]models.Photo, error) {
	const query = `
		SELECT id, filename, thumbnail_filename, created_at
		FROM photos
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var photo models.Photo
		if err := rows.Scan(&photo.ID, &photo.Filename, &photo.ThumbnailFilename, &photo.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM photos WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
