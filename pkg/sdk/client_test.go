package sdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSmartSearch_DecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/smart-search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "casual date" {
			t.Errorf("query param = %q, want %q", got, "casual date")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"occasion":"date","style":"casual","items":["White linen shirt"],"image":"https://img.example.com/1.jpeg","score":0.55}
		]`))
	}))
	defer server.Close()

	outfits, err := New(server.URL).SmartSearch(context.Background(), "casual date")
	if err != nil {
		t.Fatalf("SmartSearch: %v", err)
	}
	if len(outfits) != 1 {
		t.Fatalf("expected 1 outfit, got %d", len(outfits))
	}
	if outfits[0].Occasion != "date" || outfits[0].Score != 0.55 {
		t.Errorf("unexpected outfit: %+v", outfits[0])
	}
}

func TestSmartSearch_SendsOccasion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("occasion"); got != "party" {
			t.Errorf("occasion param = %q, want %q", got, "party")
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	if _, err := New(server.URL).SmartSearch(context.Background(), "something", WithOccasion("party")); err != nil {
		t.Fatalf("SmartSearch: %v", err)
	}
}

func TestSmartSearch_MapsErrorCodes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"invalid query", http.StatusBadRequest, `{"code":"invalid_query","message":"Query must not be empty"}`, ErrInvalidQuery},
		{"embedding down", http.StatusBadGateway, `{"code":"embedding_unavailable","message":"retry"}`, ErrEmbeddingUnavailable},
		{"catalog down", http.StatusServiceUnavailable, `{"code":"catalog_unavailable","message":"retry"}`, ErrCatalogUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).SmartSearch(context.Background(), "x")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
