package resp

import (
	"github.com/ncobase/dashboard/ecode"
)

// InvalidParam indicates a request parameter failed validation.
func InvalidParam(message string, data ...any) *Exception {
	return newException(ecode.ParamErr, message, data...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newException(ecode.NothingFound, message, data...)
}

// NotAllowed indicates a not allowed error.
func NotAllowed(message string, data ...any) *Exception {
	return newException(ecode.MethodNotAllowed, message, data...)
}

// InternalServer indicates a server error.
func InternalServer(message string, data ...any) *Exception {
	return newException(ecode.ServerErr, message, data...)
}

// ServiceUnavailable indicates a dependency is down.
func ServiceUnavailable(message string, data ...any) *Exception {
	return newException(ecode.ServiceUnavailable, message, data...)
}
