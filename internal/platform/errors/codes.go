// Package errors provides structured error handling with machine codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Command validation errors
	CodeCommandFieldRequired Code = "COMMAND_FIELD_REQUIRED"

	// Image upload errors
	CodeImageInvalidType  Code = "IMAGE_INVALID_TYPE"
	CodeImageTooLarge     Code = "IMAGE_TOO_LARGE"
	CodeImageDecodeFailed Code = "IMAGE_DECODE_FAILED"
	CodeUploadFailed      Code = "UPLOAD_FAILED"

	// Storage errors
	CodeStorageFailure Code = "STORAGE_FAILURE"
	CodeNotFound       Code = "NOT_FOUND"

	// Identity errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
)

// HTTPStatus maps an error code to an HTTP status for handler responses.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeCommandFieldRequired, CodeImageInvalidType, CodeImageDecodeFailed:
		return http.StatusBadRequest
	case CodeImageTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeUploadFailed, CodeStorageFailure, CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// LocalizationKey returns the message-catalog key for user-facing copy.
func (c Code) LocalizationKey() string {
	switch c {
	case CodeCommandFieldRequired:
		return "error.fields_required"
	case CodeImageInvalidType:
		return "error.image_invalid_type"
	case CodeImageTooLarge:
		return "error.image_too_large"
	case CodeImageDecodeFailed:
		return "error.image_decode_failed"
	case CodeUploadFailed:
		return "error.upload_failed"
	case CodeStorageFailure:
		return "error.storage_failure"
	case CodeNotFound:
		return "error.not_found"
	case CodeInvalidCredentials:
		return "error.invalid_credentials"
	default:
		return "error.unknown"
	}
}
