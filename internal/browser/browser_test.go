package browser

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestSystemOpenUsesBrowserEnv(t *testing.T) {
	var ran []string
	opener := System{
		Getenv: func(key string) string {
			if key == "BROWSER" {
				return "firefox --new-tab"
			}
			return ""
		},
		Run: func(cmd *exec.Cmd) error {
			ran = cmd.Args
			return nil
		},
	}

	if err := opener.Open("https://example.com/figma"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"firefox", "--new-tab", "https://example.com/figma"}
	if !reflect.DeepEqual(ran, expected) {
		t.Fatalf("expected %v, got %v", expected, ran)
	}
}

func TestSystemOpenPlatformFallback(t *testing.T) {
	cases := map[string][]string{
		"darwin":  {"open", "https://example.com"},
		"linux":   {"xdg-open", "https://example.com"},
		"windows": {"rundll32", "url.dll,FileProtocolHandler", "https://example.com"},
	}
	for goos, expected := range cases {
		var ran []string
		opener := System{
			Getenv: func(string) string { return "" },
			GOOS:   goos,
			Run: func(cmd *exec.Cmd) error {
				ran = cmd.Args
				return nil
			},
		}
		if err := opener.Open("https://example.com"); err != nil {
			t.Fatalf("%s: unexpected error: %v", goos, err)
		}
		if !reflect.DeepEqual(ran, expected) {
			t.Fatalf("%s: expected %v, got %v", goos, expected, ran)
		}
	}
}

func TestSystemOpenRequiresURL(t *testing.T) {
	opener := System{Run: func(*exec.Cmd) error {
		t.Fatal("expected no command to run")
		return nil
	}}
	if err := opener.Open("  "); err == nil {
		t.Fatal("expected error for blank url")
	}
}

func TestSystemOpenWrapsRunError(t *testing.T) {
	opener := System{
		Getenv: func(string) string { return "" },
		Run:    func(*exec.Cmd) error { return errors.New("not found") },
	}
	err := opener.Open("https://example.com")
	if err == nil || err.Error() != "failed to run browser: not found" {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
