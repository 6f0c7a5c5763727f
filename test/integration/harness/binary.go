package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

// BuildVersion is injected into the binary so tests can check --version
const BuildVersion = "v0.0.0-integration"

const versionPackage = "github.com/ghscout/ghscout/internal/version"

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	Args     []string
	Duration time.Duration
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ghscout once per test run, with BuildVersion stamped in.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = fmt.Errorf("failed to find module root: %w", err)
			return
		}

		tempDir, err := os.MkdirTemp("", "ghscout-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, "ghscout")

		cmd := exec.Command("go", "build",
			"-ldflags", "-X "+versionPackage+".Version="+BuildVersion,
			"-o", binaryPath,
			"./cmd")
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			buildErr = fmt.Errorf("go build failed: %w", err)
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand runs ghscout with args in env using the default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs ghscout with args in env. A timeout or a failure
// to start yields ExitCode -1.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	start := time.Now()
	err := cmd.Run()

	result := CommandResult{
		Args:     args,
		Duration: time.Since(start),
		Stderr:   stderr.String(),
		Stdout:   stdout.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("ghscout %s timed out after %v", strings.Join(args, " "), timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("ghscout %s failed to run: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}

	return result
}

// findProjectRoot asks the go tool for the module root directory.
func findProjectRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
