package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"photomi/api/internal/config"
	"photomi/api/internal/repository"
	"photomi/api/internal/service"
	"photomi/api/internal/storage"
)

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	photos *service.PhotoService
	db     *pgxpool.Pool
	store  *storage.ObjectStore
}

// NewHandlerSet builds the repositories and services behind the HTTP
// surface. store is nil when object storage is not configured; the
// photo service then reports that on every storage-dependent request.
func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	photoRepo := repository.NewPhotoRepository(db)

	var artifacts service.ArtifactStore
	if store != nil {
		artifacts = store
	}
	photoService := service.NewPhotoService(photoRepo, artifacts, cfg, log)

	return HandlerSet{
		log:    log,
		cfg:    cfg,
		photos: photoService,
		db:     db,
		store:  store,
	}
}

// NewHandlerSetWithService wires pre-built collaborators; used by tests
// to run the surface against in-memory stores.
func NewHandlerSetWithService(log zerolog.Logger, photos *service.PhotoService, cfg *config.AppConfig) HandlerSet {
	return HandlerSet{
		log:    log,
		cfg:    cfg,
		photos: photos,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/", h.Root)
	engine.GET("/healthz", h.Health)

	engine.POST("/upload/", h.UploadPhoto)
	engine.GET("/photos/", h.ListPhotos)
	engine.DELETE("/photos/:id", h.DeletePhoto)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrDecodeFailed),
		errors.Is(err, service.ErrEncodeFailed):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		// Upload, persist and storage-unavailable failures are all
		// dependency errors.
		return http.StatusInternalServerError
	}
}
