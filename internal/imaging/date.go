package imaging

import "time"

// exifTimeLayout is the fixed EXIF datetime layout, a naive local
// timestamp with no zone.
const exifTimeLayout = "2006:01:02 15:04:05"

// Capture-time tags in preference order: the moment the shutter fired
// wins over the file modification time.
var captureTags = []string{"DateTimeOriginal", "DateTime"}

// CapturedAt picks the best-known capture time out of an EXIF tag map.
// Malformed or missing values yield ok=false; EXIF corruption never
// blocks ingestion.
func CapturedAt(tags map[string]string) (time.Time, bool) {
	for _, name := range captureTags {
		value, ok := tags[name]
		if !ok {
			continue
		}
		if t, err := time.Parse(exifTimeLayout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
