package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidPair(t *testing.T) {
	cases := []struct {
		source, target string
		want           bool
	}{
		{"en", "ar", true},
		{"ar", "en", true},
		{"en", "en", false},
		{"en", "fr", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := ValidPair(tc.source, tc.target); got != tc.want {
			t.Errorf("ValidPair(%q, %q) = %v, want %v", tc.source, tc.target, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Source != "en" || req.Target != "ar" {
			t.Fatalf("unexpected pair %s->%s", req.Source, req.Target)
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "مرحبا"})
	}))
	defer srv.Close()

	tr := New(srv.URL, "", nil)
	got, err := tr.Translate(context.Background(), "hello", "en", "ar")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "مرحبا" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslateRejectsUnsupportedPair(t *testing.T) {
	tr := New("http://localhost:1", "", nil)
	if _, err := tr.Translate(context.Background(), "hello", "en", "fr"); err == nil {
		t.Fatal("expected error for unsupported pair")
	}
}

func TestTranslateEmptyTextShortCircuits(t *testing.T) {
	// No server: an empty field must not reach the network at all.
	tr := New("http://localhost:1", "", nil)
	got, err := tr.Translate(context.Background(), "", "en", "ar")
	if err != nil || got != "" {
		t.Fatalf("empty text: got %q, %v", got, err)
	}
}

func TestTranslateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := New(srv.URL, "", nil)
	if _, err := tr.Translate(context.Background(), "hello", "en", "ar"); err == nil {
		t.Fatal("expected error from failing service")
	}
}
