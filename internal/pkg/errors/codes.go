package errors

import "net/http"

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUpstream       = "UPSTREAM_ERROR"
	CodeDataNotLoaded  = "DATA_NOT_LOADED"
	CodeDatabase       = "DATABASE_ERROR"
	CodeCache          = "CACHE_ERROR"
	CodeArchive        = "ARCHIVE_DISABLED"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUpstream = New(
		CodeUpstream,
		"Statistics API request failed",
		http.StatusBadGateway,
	)

	ErrDataNotLoaded = New(
		CodeDataNotLoaded,
		"Statistics have not been loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		CodeDatabase,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		CodeCache,
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrArchiveDisabled = New(
		CodeArchive,
		"Snapshot archive is disabled",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
