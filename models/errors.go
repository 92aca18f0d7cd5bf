package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")
)

// Case image cleanup errors
var (
	ErrNotAStorageUrl     = errors.Wrap(BadParameterError, "url does not point into object storage")
	ErrEmptyObjectPath    = errors.Wrap(BadParameterError, "url resolves to an empty object path")
	ErrUnknownUrlFormat   = errors.Wrap(BadParameterError, "unknown case image url format")
	ErrBucketNotAvailable = errors.New("case images bucket is not available")
)

// Trigger payload errors
var ErrInvalidDeletionEvent = errors.Wrap(BadParameterError, "invalid case deletion event")
