package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/dashboard/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// newException creates a failure for code; the HTTP status follows the code.
func newException(code int, message string, data ...any) *Exception {
	var errs any
	if len(data) > 0 {
		errs = data[0]
	}
	if message == "" {
		message = ecode.Text(code)
	}
	return &Exception{
		Status:  ecode.ToHTTPStatus(code),
		Code:    code,
		Message: message,
		Errors:  errs,
	}
}

// Success writes a 200 response. A string argument becomes {"message": ...},
// anything else is encoded as is.
func Success(w http.ResponseWriter, data ...any) {
	var body any = map[string]any{"message": "ok"}
	if len(data) > 0 && data[0] != nil {
		if msg, ok := data[0].(string); ok {
			body = map[string]any{"message": msg}
		} else {
			body = data[0]
		}
	}
	writeJSON(w, http.StatusOK, body)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = newException(ecode.ServerErr, "")
	}
	statusCode, result := buildFailureResponse(r)
	writeJSON(w, statusCode, result)
}

// buildFailureResponse builds the failure response.
func buildFailureResponse(r *Exception) (int, any) {
	code := ecode.RequestErr
	if r.Code != 0 {
		code = r.Code
	}
	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(code)
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// writeJSON writes res as the JSON body.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}
