package blobstore

import "errors"

var (
	// ErrUploadRejected is returned when the blob store rejects the artifact.
	ErrUploadRejected = errors.New("blobstore client: upload rejected")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("blobstore client: internal error")

	// ErrInvalidResponse is returned when the blob store answers with
	// an unexpected payload or status.
	ErrInvalidResponse = errors.New("blobstore client: invalid response")
)
