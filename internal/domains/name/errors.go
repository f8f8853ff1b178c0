package name

import (
	"errors"
	"net/http"
)

var (
	// ErrNameNotFound signals an absent canonical entry. A read or targeted
	// update on a missing name is a client error, not a server fault.
	ErrNameNotFound = errors.New("name not found in the database")

	// ErrNameMismatch is returned when the name in the URL differs from the
	// name in the update payload.
	ErrNameMismatch = errors.New("name given in URL is different from name in request payload")

	// ErrUnknownGeoLocation is returned when a payload references a place
	// that is not in the geolocation registry.
	ErrUnknownGeoLocation = errors.New("geoLocation does not reference a known place")

	// ErrEmptyBatch is returned for a batch insert with no elements.
	ErrEmptyBatch = errors.New("batch upload requires at least one entry")

	// ErrEmptyFile is returned when an empty spreadsheet is uploaded.
	ErrEmptyFile = errors.New("you can't upload an empty file")

	// ErrImportFailed wraps aggregated row failures from a spreadsheet import.
	ErrImportFailed = errors.New("spreadsheet import failed")
)

// ToErrorCode maps a domain error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNameNotFound):
		return "NAME_NOT_FOUND"
	case errors.Is(err, ErrNameMismatch):
		return "NAME_MISMATCH"
	case errors.Is(err, ErrUnknownGeoLocation):
		return "UNKNOWN_GEOLOCATION"
	case errors.Is(err, ErrEmptyBatch), errors.Is(err, ErrEmptyFile):
		return "INVALID_REQUEST"
	case errors.Is(err, ErrImportFailed):
		return "IMPORT_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus is the single error-classification point for the name API.
// Handlers never carry status literals for domain errors.
//
// Note the mismatch case: the legacy system answered 500 here, but it is a
// caller mistake and is reported as 400.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameMismatch),
		errors.Is(err, ErrUnknownGeoLocation),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrEmptyFile):
		return http.StatusBadRequest
	case errors.Is(err, ErrImportFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
