// Package ecode defines the error codes used in dashboard responses and the
// helpers that turn them into messages and HTTP statuses.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// The absolute value of a code is its HTTP status, except ParamErr which
// answers 400:
//
//	status := ecode.ToHTTPStatus(ecode.ParamErr)
//	// Returns: 400
//
// Field helpers build the messages of validation failures:
//
//	resp.Fail(w, resp.InvalidParam(ecode.FieldIsRequired("post_id")))
package ecode
