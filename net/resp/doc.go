// Package resp writes the JSON envelopes used by the dashboard's non-HTML
// endpoints (health, view snapshots, rejected login providers).
//
// Success responses carry the payload as-is:
//
//	resp.Success(w, snapshot)
//
// Failures use Exception with an ecode business code:
//
//	resp.Fail(w, resp.InvalidParam(ecode.FieldIsInvalid("provider")))
//	// 400 {"code":-401,"message":"provider invalid"}
package resp
