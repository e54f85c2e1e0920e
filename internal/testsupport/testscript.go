package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/journey/board"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce   sync.Once
	journeyPath string
	buildErr    error
)

// BuildJourney builds the journey binary once and returns its path.
func BuildJourney(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "journey-bin-")
		if err != nil {
			buildErr = err
			return
		}

		journeyPath = filepath.Join(binDir, "journey")
		cmd := exec.Command("go", "build", "-o", journeyPath, "./cmd/journey")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build journey: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return journeyPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("JOURNEY", BuildJourney(t))
	env.Setenv("JOURNEY_DATA", "")

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdTaskStatus checks the status of a task in a JSON task document.
func CmdTaskStatus(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 3 {
		ts.Fatalf("usage: taskstatus FILE TASK-ID STATUS")
	}

	tasks, err := board.Decode([]byte(ts.ReadFile(args[0])), board.FormatJSON)
	if err != nil {
		ts.Fatalf("parse task document: %v", err)
	}

	for _, task := range tasks {
		if task.ID != args[1] {
			continue
		}
		matched := string(task.Status) == args[2]
		if matched == neg {
			ts.Fatalf("task %s has status %q", task.ID, task.Status)
		}
		return
	}

	ts.Fatalf("task %q not found", args[1])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
