package models

import "time"

// Photo is one ingested photo. Filename and ThumbnailFilename are the
// object-store keys of the original and the thumbnail; both are unique.
// CreatedAt is the EXIF capture time when the image carried one,
// otherwise the upload time. A row exists only after both artifacts
// were stored.
type Photo struct {
	ID                int64
	Filename          string
	ThumbnailFilename string
	CreatedAt         time.Time
}
