package ecode

import "net/http"

// Common codes
const (
	OK = 0

	// request
	RequestErr = -400
	ParamErr   = -401

	// resource
	NothingFound     = -404
	MethodNotAllowed = -405

	// server
	ServerErr          = -500
	ServiceUnavailable = -503
)

var (
	texts = map[int]string{
		OK:                 "OK",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
	}
	statuses = map[int]int{
		OK:                 http.StatusOK,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusBadRequest,
		NothingFound:       http.StatusNotFound,
		MethodNotAllowed:   http.StatusMethodNotAllowed,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
	}
)

// Text returns the message for a code, or the server error message for unknown codes.
func Text(code int) string {
	if t, ok := texts[code]; ok {
		return t
	}
	return texts[ServerErr]
}

// ToHTTPStatus maps a code to an HTTP status.
func ToHTTPStatus(code int) int {
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
