package models

import "errors"

// Sentinel errors for the upload and gallery paths. Callers match with
// errors.Is to pick the HTTP status.
var (
	// ErrValidation means the request input was missing or malformed.
	// No external call has been made yet.
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized means the request carried no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageUnavailable means the blob write to object storage failed.
	ErrStorageUnavailable = errors.New("object storage unavailable")

	// ErrMetadataParse means the image bytes could not be parsed for
	// metadata. The ingestion pipeline swallows it and proceeds with
	// empty metadata.
	ErrMetadataParse = errors.New("unparseable image metadata")

	// ErrStoreUnavailable means a record read or write against the
	// database failed.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrNoRecords is the valid empty-result state for filtered queries.
	ErrNoRecords = errors.New("no records found")
)
