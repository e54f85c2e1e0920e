package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/journey/internal/testsupport"
	"github.com/creack/pty"
)

const colorTasks = `{"tasks": [
  {"id": "t1", "name": "Write outline", "status": "in_progress", "assets": []},
  {"id": "t2", "name": "Publish", "status": "completed", "assets": []}
]}`

func runOnTerminal(t *testing.T, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(testsupport.BuildJourney(t), args...)
	cmd.Env = env
	cmd.Dir = t.TempDir()

	tty, err := pty.Start(cmd)
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tty.Close()

	var buf bytes.Buffer
	// Reading the pty fails with EIO once the child exits.
	_, _ = io.Copy(&buf, tty)
	if err := cmd.Wait(); err != nil {
		t.Fatalf("journey %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func terminalEnv(t *testing.T, extra ...string) (env []string, dataPath string) {
	t.Helper()
	home := t.TempDir()
	if err := testsupport.EnsureHomeDirs(home); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	dataPath = filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(dataPath, []byte(colorTasks), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	env = []string{"HOME=" + home, "TERM=xterm-256color", "PATH=" + os.Getenv("PATH")}
	return append(env, extra...), dataPath
}

func TestBoardColorsStatusesOnTerminal(t *testing.T) {
	env, dataPath := terminalEnv(t)
	output := runOnTerminal(t, env, "board", "--data", dataPath)

	if !strings.Contains(output, "\x1b[1m\x1b[33mIn Progress\x1b[0m") {
		t.Fatalf("expected highlighted in-progress status, got %q", output)
	}
	if !strings.Contains(output, "\x1b[32mCompleted\x1b[0m") {
		t.Fatalf("expected green completed status, got %q", output)
	}
	if got := stripANSICodes(output); !strings.Contains(got, "Write outline") {
		t.Fatalf("expected task name in output, got %q", got)
	}
}

func TestBoardRespectsNoColorOnTerminal(t *testing.T) {
	env, dataPath := terminalEnv(t, "NO_COLOR=1")
	output := runOnTerminal(t, env, "board", "--data", dataPath)

	if strings.Contains(output, "\x1b[") {
		t.Fatalf("expected no ANSI codes with NO_COLOR, got %q", output)
	}
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		builder.WriteByte(char)
	}
	return builder.String()
}
