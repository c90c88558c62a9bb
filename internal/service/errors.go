package service

import "errors"

// Stage errors of the ingestion pipeline. Every failure wraps exactly
// one of these so callers can tell the failing stage apart with
// errors.Is.
var (
	// ErrDecodeFailed: the upload is not a decodable image.
	ErrDecodeFailed = errors.New("image decode failed")

	// ErrEncodeFailed: the thumbnail could not be re-encoded.
	ErrEncodeFailed = errors.New("thumbnail encode failed")

	// ErrUploadFailed: the artifact store rejected a put. No catalog
	// record is written; an already-uploaded original stays behind.
	ErrUploadFailed = errors.New("artifact upload failed")

	// ErrPersistFailed: the catalog store rejected the operation.
	ErrPersistFailed = errors.New("catalog operation failed")

	// ErrNotFound: the referenced photo does not exist.
	ErrNotFound = errors.New("photo not found")

	// ErrStorageUnavailable: no artifact store was configured at
	// startup. Surfaced on every storage-dependent request until fixed.
	ErrStorageUnavailable = errors.New("object storage not configured")
)
