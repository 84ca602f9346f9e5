package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/dashboard/ecode"
)

func TestSuccessWritesData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"status": "healthy"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestSuccessWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, "deleted")

	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "deleted" {
		t.Errorf("expected message, got %v", body)
	}
}

func TestFailUsesExceptionCode(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, InvalidParam(ecode.FieldIsInvalid("provider")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body Exception
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != ecode.ParamErr || body.Message != "provider invalid" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestFailNilDefaultsToServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStatusFollowsCode(t *testing.T) {
	cases := []struct {
		e      *Exception
		status int
		code   int
	}{
		{InvalidParam("bad"), http.StatusBadRequest, ecode.ParamErr},
		{NotFound(""), http.StatusNotFound, ecode.NothingFound},
		{NotAllowed(""), http.StatusMethodNotAllowed, ecode.MethodNotAllowed},
		{InternalServer("boom"), http.StatusInternalServerError, ecode.ServerErr},
		{ServiceUnavailable("down", map[string]any{"status": "degraded"}), http.StatusServiceUnavailable, ecode.ServiceUnavailable},
	}
	for _, tt := range cases {
		rec := httptest.NewRecorder()
		Fail(rec, tt.e)
		if rec.Code != tt.status {
			t.Errorf("code %d: expected status %d, got %d", tt.code, tt.status, rec.Code)
		}
		var body Exception
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Code != tt.code || body.Message == "" {
			t.Errorf("unexpected body %+v", body)
		}
	}
}

func TestEmptyMessageUsesCodeText(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, NotFound(""))

	var body Exception
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != ecode.Text(ecode.NothingFound) {
		t.Errorf("expected %q, got %q", ecode.Text(ecode.NothingFound), body.Message)
	}
}
