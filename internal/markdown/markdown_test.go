package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRender_EmptyInput(t *testing.T) {
	if out := Render(40, 2, []byte(" \n\n")); out != nil {
		t.Fatalf("expected nil for blank input, got %q", string(out))
	}
}

func TestRender_IndentsEveryLine(t *testing.T) {
	out := string(Render(30, 4, []byte("Learn how to build modern websites using semantic HTML.")))
	if out == "" {
		t.Fatal("expected rendered output")
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("expected line %q to be indented", line)
		}
	}
	if !strings.Contains(out, "semantic") {
		t.Fatalf("expected description text in output, got %q", out)
	}
}
