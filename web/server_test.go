package web

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestServerAssignsRequestID(t *testing.T) {
	var logs bytes.Buffer
	server, err := NewServer(ServerOptions{
		Handler: NewHandler(Options{Store: testStore()}),
		Logger:  log.New(&logs, "", 0),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/board", nil))

	id := recorder.Header().Get("X-Request-Id")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q: %v", id, err)
	}
	if !strings.Contains(logs.String(), id+" GET /board 200") {
		t.Fatalf("expected request log line, got %q", logs.String())
	}
}

func TestServerKeepsIncomingRequestID(t *testing.T) {
	server, err := NewServer(ServerOptions{Handler: NewHandler(Options{}), Logger: log.New(&bytes.Buffer{}, "", 0)})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/board", nil)
	request.Header.Set("X-Request-Id", "req-42")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if got := recorder.Header().Get("X-Request-Id"); got != "req-42" {
		t.Fatalf("expected incoming request id, got %q", got)
	}
}

func TestServerRecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	server, err := NewServer(ServerOptions{Handler: panicking, Logger: log.New(&logs, "", 0)})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/board", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", recorder.Code)
	}
	if !strings.Contains(logs.String(), "panic handling request GET /board: boom") {
		t.Fatalf("expected panic to be logged, got %q", logs.String())
	}
}

func TestNewServerRequiresHandler(t *testing.T) {
	if _, err := NewServer(ServerOptions{}); err == nil {
		t.Fatal("expected error for missing handler")
	}
}

func TestResolveAddr(t *testing.T) {
	cases := []struct {
		name    string
		addr    string
		port    int
		want    string
		wantErr bool
	}{
		{name: "configured port", port: 8089, want: "127.0.0.1:8089"},
		{name: "bare port", addr: "9000", port: 8089, want: "127.0.0.1:9000"},
		{name: "host and port", addr: "0.0.0.0:9000", want: "0.0.0.0:9000"},
		{name: "invalid port", addr: "abc", wantErr: true},
		{name: "port out of range", addr: "70000", wantErr: true},
		{name: "no port", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveAddr(tc.addr, tc.port)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveBaseURL(t *testing.T) {
	cases := map[string]string{
		":8089":                  "http://127.0.0.1:8089",
		"0.0.0.0:9000":           "http://127.0.0.1:9000",
		"localhost:8089":         "http://localhost:8089",
		"https://board.example/": "https://board.example",
		"":                       "",
	}
	for addr, want := range cases {
		if got := ResolveBaseURL(addr); got != want {
			t.Fatalf("ResolveBaseURL(%q) = %q, want %q", addr, got, want)
		}
	}
}
