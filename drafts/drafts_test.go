package drafts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creamery/globals"
	"creamery/localstore"

	"github.com/julienschmidt/httprouter"
)

func sessionRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), globals.SessionIDKey, "s1")
	return r.WithContext(ctx)
}

func TestDraftLifecycle(t *testing.T) {
	store := localstore.NewMemoryStore()
	params := httprouter.Params{{Key: "form", Value: "checkout-form"}}

	// Save
	w := httptest.NewRecorder()
	SaveDraft(store)(w, sessionRequest(http.MethodPut, "/api/drafts/checkout-form", `{"full-name":"Noa Levi","terms":true}`), params)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	// Restore
	w = httptest.NewRecorder()
	GetDraft(store)(w, sessionRequest(http.MethodGet, "/api/drafts/checkout-form", ""), params)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var fields map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fields["full-name"] != "Noa Levi" || fields["terms"] != true {
		t.Fatalf("got %+v", fields)
	}

	// Clear
	w = httptest.NewRecorder()
	ClearDraft(store)(w, sessionRequest(http.MethodDelete, "/api/drafts/checkout-form", ""), params)
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	GetDraft(store)(w, sessionRequest(http.MethodGet, "/api/drafts/checkout-form", ""), params)
	fields = nil
	json.Unmarshal(w.Body.Bytes(), &fields)
	if len(fields) != 0 {
		t.Fatalf("draft not cleared: %+v", fields)
	}
}

func TestGetMissingDraftIsEmptyObject(t *testing.T) {
	store := localstore.NewMemoryStore()
	params := httprouter.Params{{Key: "form", Value: "contact-form"}}

	w := httptest.NewRecorder()
	GetDraft(store)(w, sessionRequest(http.MethodGet, "/api/drafts/contact-form", ""), params)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "{}" {
		t.Fatalf("body = %q, want {}", got)
	}
}

func TestSaveDraftRejectsBadJSON(t *testing.T) {
	store := localstore.NewMemoryStore()
	params := httprouter.Params{{Key: "form", Value: "checkout-form"}}

	w := httptest.NewRecorder()
	SaveDraft(store)(w, sessionRequest(http.MethodPut, "/api/drafts/checkout-form", `{broken`), params)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
