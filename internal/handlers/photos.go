package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"photomi/api/internal/media/sniffer"
)

type photoResponse struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	ThumbnailURL string `json:"thumbnail_url"`
	OriginalURL  string `json:"original_url"`
	CreatedAt    string `json:"created_at"`
}

func (h HandlerSet) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}
	defer file.Close()

	if max := h.cfg.Upload.MaxFileSize; max > 0 && header.Size > max {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file_too_large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read_failed"})
		return
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.DetectHead(head)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_media_type"})
		return
	}
	declared := sniffer.MimeTypeFromHTTP(http.Header(header.Header))
	if declared != "" && declared != "application/octet-stream" && declared != result.MIME {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_type_mismatch"})
		return
	}

	photo, err := h.photos.Ingest(c.Request.Context(), data, header.Filename, time.Now())
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("upload failed")
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": photo.Filename,
		"message":  "Photo uploaded successfully",
	})
}

func (h HandlerSet) ListPhotos(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	views, err := h.photos.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list photos failed")
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	items := make([]photoResponse, 0, len(views))
	for _, view := range views {
		items = append(items, photoResponse{
			ID:           view.ID,
			Filename:     view.Filename,
			ThumbnailURL: view.ThumbnailURL,
			OriginalURL:  view.OriginalURL,
			CreatedAt:    view.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) DeletePhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	if err := h.photos.Delete(c.Request.Context(), id); err != nil {
		if status := statusForError(err); status != http.StatusNotFound {
			h.log.Error().Err(err).Int64("id", id).Msg("delete photo failed")
			c.JSON(status, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo_not_found"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

func (h HandlerSet) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Photomi API is running!"})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
