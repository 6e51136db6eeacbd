package dto

import "net/http"

// Error codes returned in the error envelope
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeUnprocessable  = "UNPROCESSABLE"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// statusByCode maps error codes to HTTP status codes
var statusByCode = map[string]int{
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeUnprocessable:  http.StatusUnprocessableEntity,
	ErrCodeInternalServer: http.StatusInternalServerError,
}

// GetHTTPStatus derives the HTTP status code from an error code
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
