package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"go.uber.org/zap"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body failed: %v", err)
	}
	return body.Message
}

func TestWrite_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), httperr.Validation("Title and content are required."))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Title and content are required." {
		t.Errorf("message: got %q", got)
	}
}

func TestWrite_ConflictMapsTo400(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), httperr.Conflict("This email is already in use."))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestWrite_Auth(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), httperr.Auth("Authentication required."))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestWrite_Forbidden(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), httperr.Forbidden("You do not have permission to modify this magazine."))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestWrite_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), httperr.NotFound("Magazine"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if got := decodeMessage(t, rec); got != "Magazine not found." {
		t.Errorf("message: got %q", got)
	}
}

func TestWrite_WrappedErrorStillMaps(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("updating magazine: %w", httperr.Forbidden("nope"))
	httperr.Write(rec, zap.NewNop(), wrapped)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestWrite_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, zap.NewNop(), errors.New("connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if got := decodeMessage(t, rec); strings.Contains(got, "connection reset") {
		t.Errorf("internal error detail leaked to client: %q", got)
	}
}

func TestRecoverer_IncludesStackInDev(t *testing.T) {
	h := httperr.Recoverer(zap.NewNop(), true)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/magazines", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "stack") {
		t.Error("expected stack in dev-mode panic response")
	}
}

func TestRecoverer_HidesStackInProd(t *testing.T) {
	h := httperr.Recoverer(zap.NewNop(), false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/magazines", nil))

	if strings.Contains(rec.Body.String(), "goroutine") {
		t.Error("stack trace leaked in prod-mode panic response")
	}
}
