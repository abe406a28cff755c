package assetstorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ImagePrefix is the namespace all faculty photos are stored under.
const ImagePrefix = "faculty_images"

// Storage is the blob-store boundary for faculty photos. Upload returns a
// publicly retrievable URL; Delete accepts that URL and removes the object
// behind it. Deletion of stale assets is best-effort: callers log failures
// and move on, a record write is never blocked by it.
type Storage interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// encodedPathSegment matches the %2F-encoded object path segment that
// retrieval URLs embed, terminated by the query string.
var encodedPathSegment = regexp.MustCompile(`%2F([^?]+)\?`)

// NewObjectKey builds a collision-resistant object key for an uploaded
// photo: the image namespace, a millisecond timestamp and the original
// filename with path separators stripped.
func NewObjectKey(filename string) string {
	name := strings.ReplaceAll(filename, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("%s/%d_%s", ImagePrefix, time.Now().UnixMilli(), name)
}

// PublicURL mints the retrieval URL for an object key. The key is escaped
// as a single path segment so the slash after the namespace becomes %2F,
// which keeps the URL reversible for deletion.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(key) + "?alt=media"
}

// ObjectPathFromURL reverse-derives the object key from a retrieval URL.
// It locates the %2F-encoded segment before the query string; the decoded
// remainder is the filename under the image namespace. Returns false when
// the URL does not carry a derivable path.
func ObjectPathFromURL(fileURL string) (string, bool) {
	match := encodedPathSegment.FindStringSubmatch(fileURL)
	if match == nil {
		return "", false
	}

	name, err := url.PathUnescape(match[1])
	if err != nil || name == "" {
		return "", false
	}

	return ImagePrefix + "/" + name, true
}
