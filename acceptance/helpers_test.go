package acceptance_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runKitty executes the kitty binary with stdin and returns stdout, stderr,
// and exit code.
func runKitty(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(kittyBinary, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run kitty: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runKittySuccess runs kitty expecting exit code 0 and returns stdout.
func runKittySuccess(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runKitty(t, stdin, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %q\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// writeFile creates a file with content in a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
