package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carboncell/user-auth/internal/core/domain"
)

func TestClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 2,
			"entries": [
				{"API": "Cat Facts", "Description": "Daily cat facts", "Auth": "", "HTTPS": true, "Cors": "no", "Link": "https://catfact.ninja/", "Category": "Animals"},
				{"API": "NASA", "Description": "NASA data", "Auth": "", "HTTPS": true, "Cors": "yes", "Link": "https://api.nasa.gov", "Category": "Science"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	entries, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].API != "Cat Facts" || entries[0].Category != "Animals" || !entries[0].HTTPS {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}

func TestClient_Fetch_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background())

	var upstream *domain.UpstreamStatusError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamStatusError, got %v", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", upstream.StatusCode)
	}
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestClient_Fetch_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, time.Second)
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatalf("expected connection error")
	}
}
