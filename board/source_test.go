package board

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFileSourceHonoursCancelledContext(t *testing.T) {
	path := writeDataFile(t, "data.json", twoTaskJSON)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileSource{Path: path}.Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHTTPSourceRequestsDocumentFormats(t *testing.T) {
	var accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(twoTaskJSON))
	}))
	defer server.Close()

	data, err := HTTPSource{URL: server.URL, Client: server.Client()}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(string(data), "task2") {
		t.Fatalf("unexpected body %q", data)
	}
	if !strings.Contains(accept, "application/json") || !strings.Contains(accept, "application/yaml") {
		t.Fatalf("unexpected Accept header %q", accept)
	}
}

func TestHTTPSourceReportsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := HTTPSource{URL: server.URL, Client: server.Client()}.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestSourceFormats(t *testing.T) {
	if got := (FileSource{Path: "tasks.yml"}).Format(); got != FormatYAML {
		t.Fatalf("expected yaml for .yml, got %q", got)
	}
	if got := (HTTPSource{URL: "https://example.com/tasks.json?v=2"}).Format(); got != FormatJSON {
		t.Fatalf("expected json, got %q", got)
	}
}
