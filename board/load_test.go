package board

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write data file: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeDataFile(t, "data.json", twoTaskJSON)

	result := Load(context.Background(), FileSource{Path: path}, nil)
	if result.Fallback {
		t.Fatalf("unexpected fallback: %v", result.Err)
	}
	if len(result.Tasks) != 2 || result.Tasks[1].ID != "task2" {
		t.Fatalf("unexpected tasks: %#v", result.Tasks)
	}
}

func TestLoadFallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		source Source
	}{
		{name: "missing file", source: FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}},
		{name: "malformed file", source: FileSource{Path: writeDataFile(t, "bad.json", "{not json")}},
		{name: "nil source", source: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			result := Load(context.Background(), tt.source, log.New(&logs, "", 0))
			if !result.Fallback {
				t.Fatalf("expected fallback")
			}
			if !errors.Is(result.Err, ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable, got %v", result.Err)
			}
			if !reflect.DeepEqual(result.Tasks, FallbackTasks()) {
				t.Fatalf("expected fallback dataset, got %#v", result.Tasks)
			}
			if !strings.Contains(logs.String(), "error loading data") {
				t.Fatalf("expected failure to be logged, got %q", logs.String())
			}
		})
	}
}

func TestLoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoTaskJSON))
	}))
	defer server.Close()

	result := Load(context.Background(), HTTPSource{URL: server.URL + "/data.json", Client: server.Client()}, nil)
	if result.Fallback {
		t.Fatalf("unexpected fallback: %v", result.Err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(result.Tasks))
	}

	missing := Load(context.Background(), HTTPSource{URL: server.URL + "/other.json", Client: server.Client()}, nil)
	if !missing.Fallback {
		t.Fatalf("expected 404 to fall back")
	}
}

func TestLoadNormalizesUnknownStatus(t *testing.T) {
	path := writeDataFile(t, "data.json", `{"tasks": [{"id": "a", "name": "A", "status": "blocked", "assets": []}]}`)

	var logs bytes.Buffer
	result := Load(context.Background(), FileSource{Path: path}, log.New(&logs, "", 0))
	if result.Fallback {
		t.Fatalf("unexpected fallback: %v", result.Err)
	}
	if result.Tasks[0].Status != StatusPending {
		t.Fatalf("expected pending, got %q", result.Tasks[0].Status)
	}
	if !strings.Contains(logs.String(), `unknown status "blocked"`) {
		t.Fatalf("expected normalization to be logged, got %q", logs.String())
	}
}

func TestFallbackDataset(t *testing.T) {
	tasks := FallbackTasks()
	if len(tasks) != 1 {
		t.Fatalf("expected one fallback task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.ID != "task1" || task.Name != "Webpage Creation" || task.Status != StatusInProgress {
		t.Fatalf("unexpected fallback task: %#v", task)
	}
	if len(task.Assets) != 3 {
		t.Fatalf("expected three assets, got %d", len(task.Assets))
	}
	if !task.Assets[0].HasContent() || task.Assets[1].HasContent() || task.Assets[2].HasContent() {
		t.Fatalf("expected only the first asset to have content")
	}
	if err := Validate(tasks); err != nil {
		t.Fatalf("fallback dataset is invalid: %v", err)
	}

	tasks[0].Name = "changed"
	if FallbackTasks()[0].Name != "Webpage Creation" {
		t.Fatalf("fallback dataset is shared between calls")
	}
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		value string
		want  Source
	}{
		{"", FileSource{Path: DefaultSource}},
		{"  tasks.yaml ", FileSource{Path: "tasks.yaml"}},
		{"https://example.com/data.json", HTTPSource{URL: "https://example.com/data.json"}},
		{"HTTP://example.com/data.json", HTTPSource{URL: "HTTP://example.com/data.json"}},
	}
	for _, tt := range tests {
		if got := ResolveSource(tt.value); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ResolveSource(%q) = %#v, want %#v", tt.value, got, tt.want)
		}
	}
}
