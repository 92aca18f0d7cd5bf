package cleanup

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/models"
)

// ObjectPathExtractor turns a case image url into the path of the object in the bucket.
type ObjectPathExtractor interface {
	ObjectPath(imageUrl string) (string, error)
}

type ObjectPathExtractorFunc func(imageUrl string) (string, error)

func (f ObjectPathExtractorFunc) ObjectPath(imageUrl string) (string, error) {
	return f(imageUrl)
}

func NewObjectPathExtractor(format models.ImageUrlFormat) (ObjectPathExtractor, error) {
	format, err := models.ImageUrlFormatFrom(string(format))
	if err != nil {
		return nil, err
	}
	if format == models.ImageUrlFormatGs {
		return ObjectPathExtractorFunc(GsUrlPath), nil
	}
	return ObjectPathExtractorFunc(FirebaseDownloadUrlPath), nil
}

// FirebaseDownloadUrlPath keeps what follows the first "/o/" up to the query string, and
// percent-decodes it.
func FirebaseDownloadUrlPath(imageUrl string) (string, error) {
	_, afterMarker, found := strings.Cut(imageUrl, "/o/")
	if !found {
		return "", errors.Wrapf(models.ErrNotAStorageUrl, "no /o/ segment in %q", imageUrl)
	}
	escaped, _, _ := strings.Cut(afterMarker, "?")

	path, err := url.PathUnescape(escaped)
	if err != nil {
		return "", errors.Wrapf(models.ErrNotAStorageUrl, "could not decode %q: %s", escaped, err)
	}
	if path == "" {
		return "", errors.Wrapf(models.ErrEmptyObjectPath, "%q", imageUrl)
	}
	return path, nil
}

// GsUrlPath returns the object path of a gs://bucket/path url.
func GsUrlPath(imageUrl string) (string, error) {
	u, err := url.Parse(imageUrl)
	if err != nil {
		return "", errors.Wrapf(models.ErrNotAStorageUrl, "could not parse %q: %s", imageUrl, err)
	}
	if u.Scheme != "gs" || u.Host == "" {
		return "", errors.Wrapf(models.ErrNotAStorageUrl, "%q is not a gs:// url", imageUrl)
	}
	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return "", errors.Wrapf(models.ErrEmptyObjectPath, "%q", imageUrl)
	}
	return path, nil
}
