package models

import "github.com/cockroachdb/errors"

// ImageUrlFormat is the convention used to turn a case image url into an object path.
type ImageUrlFormat string

const (
	// ImageUrlFormatFirebase matches Firebase download urls:
	// https://firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped path>?alt=media&token=...
	ImageUrlFormatFirebase ImageUrlFormat = "firebase"
	// ImageUrlFormatGs matches gs://<bucket>/<path> urls.
	ImageUrlFormatGs ImageUrlFormat = "gs"
)

// ImageUrlFormatFrom parses a configured format. An empty value means firebase.
func ImageUrlFormatFrom(s string) (ImageUrlFormat, error) {
	switch ImageUrlFormat(s) {
	case ImageUrlFormatFirebase, "":
		return ImageUrlFormatFirebase, nil
	case ImageUrlFormatGs:
		return ImageUrlFormatGs, nil
	}
	return "", errors.Wrapf(ErrUnknownUrlFormat, "%q", s)
}

type ImageDeletionFailure struct {
	Url string
	Err error
}

// CleanupReport sums up one cleanup run for a deleted case. Err is set when the run could
// not start deleting at all.
type CleanupReport struct {
	CaseId    string
	Attempted int
	Deleted   []string
	Failures  []ImageDeletionFailure
	Err       error
}

func (r CleanupReport) Complete() bool {
	return len(r.Deleted)+len(r.Failures) == r.Attempted
}
