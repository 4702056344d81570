package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchCSVSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "text/csv" {
			t.Errorf("unexpected accept header %q", got)
		}
		w.Write([]byte("nome,preco\nPizza,10"))
	}))
	defer server.Close()

	client := NewClient(time.Second)
	text, err := client.FetchCSV(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "nome,preco\nPizza,10" {
		t.Fatalf("unexpected body: %q", text)
	}
}

func TestFetchCSVNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(time.Second)
	if _, err := client.FetchCSV(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestFetchCSVEmptyBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n"))
	}))
	defer server.Close()

	client := NewClient(time.Second)
	if _, err := client.FetchCSV(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for blank body")
	}
}

func TestFetchCSVNetworkError(t *testing.T) {
	t.Parallel()

	client := NewClient(100 * time.Millisecond)
	if _, err := client.FetchCSV(context.Background(), "http://127.0.0.1:1/none"); err == nil {
		t.Fatal("expected error for unreachable host")
	}
}
