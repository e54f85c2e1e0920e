// Package browser opens asset content URLs with $BROWSER or the platform opener.
package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// Opener opens URLs for the user.
type Opener interface {
	Open(url string) error
}

// System opens URLs with $BROWSER, falling back to the platform's default
// opener.
type System struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// GOOS defaults to runtime.GOOS.
	GOOS string
	// Run starts the command. It defaults to exec.Cmd.Start, so Open does not
	// wait for the browser to exit.
	Run func(*exec.Cmd) error
}

// IsInteractive returns true if stdout is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Open launches the browser on url.
func (s System) Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("url is required")
	}
	name, args := s.command(url)
	cmd := exec.Command(name, args...)
	run := s.Run
	if run == nil {
		run = (*exec.Cmd).Start
	}
	if err := run(cmd); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("browser exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func (s System) command(url string) (string, []string) {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if browser := strings.TrimSpace(getenv("BROWSER")); browser != "" {
		fields := strings.Fields(browser)
		return fields[0], append(fields[1:], url)
	}
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
