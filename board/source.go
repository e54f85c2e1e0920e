package board

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultSource is the data file read when no source is configured.
const DefaultSource = "data.json"

// maxDocumentBytes bounds how much of a remote document is read.
const maxDocumentBytes = 8 * 1024 * 1024

// Source supplies the raw bytes of a task document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Format reports how the fetched bytes are encoded.
	Format() Format
	String() string
}

// FileSource reads a task document from disk.
type FileSource struct {
	Path string
}

// Fetch reads the file.
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

// Format implements Source.
func (s FileSource) Format() Format { return FormatForName(s.Path) }

func (s FileSource) String() string { return s.Path }

// HTTPSource fetches a task document with a GET request.
type HTTPSource struct {
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Fetch issues the request. Non-200 responses are errors.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", s.URL, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.URL, err)
	}
	return data, nil
}

// Format implements Source.
func (s HTTPSource) Format() Format { return FormatForName(s.URL) }

func (s HTTPSource) String() string { return s.URL }

// ResolveSource turns a configured value into a Source. URLs with an http or
// https scheme are fetched over HTTP; anything else is a file path.
func ResolveSource(value string) Source {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FileSource{Path: DefaultSource}
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return HTTPSource{URL: trimmed}
	}
	return FileSource{Path: trimmed}
}
