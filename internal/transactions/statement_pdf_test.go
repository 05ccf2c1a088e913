package transactions_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestStatementRendersPDF(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	resp := doReq(t, app, "POST", "/", map[string]any{"title": "Salary", "amount": 5000, "type": "credit"}, "")
	resp.Body.Close()
	token := sessionCookie(resp)

	resp = doReq(t, app, "POST", "/", map[string]any{"title": "Rent", "amount": 1200, "type": "debit"}, token)
	resp.Body.Close()

	resp = doReq(t, app, "GET", "/statement", nil, token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("statement status=%d want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
		t.Errorf("content-type=%q want application/pdf", ct)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(raw), "%PDF") {
		t.Errorf("body does not look like a PDF (starts %q)", raw[:min(8, len(raw))])
	}
}

func TestStatementEmptySession(t *testing.T) {
	app := newTestApp(&fakeStore{})

	resp := doReq(t, app, "GET", "/statement", nil, "0b9fcd2e-55de-4a83-9aa5-9571b7a4a0ce")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("statement status=%d want 200", resp.StatusCode)
	}
}
