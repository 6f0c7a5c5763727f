package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit when nothing else is configured
const DefaultMaxLogFiles = 1000

// Logger is shared by every package. It discards until Initialize runs.
var Logger = discardLogger()

// Initialize points Logger at a debug log file, or discards when debugging is off.
// It returns the log file path, or "" when logs are discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := fromEnv(fileOptions{debug: debug, file: debugFile, maxFiles: maxLogFiles})

	if !opts.debug && opts.file == "" {
		Logger = discardLogger()
		return "", nil
	}

	path, err := opts.prepare()
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path)
	fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)

	return path, nil
}

type fileOptions struct {
	debug    bool
	file     string
	maxFiles int
}

// fromEnv fills options the caller left at their zero or default value
func fromEnv(opts fileOptions) fileOptions {
	if os.Getenv("GHSCOUT_DEBUG") == "1" {
		opts.debug = true
	}
	if opts.file == "" {
		opts.file = os.Getenv("GHSCOUT_DEBUG_FILE")
	}
	if opts.maxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("GHSCOUT_MAX_LOG_FILES")); err == nil {
			opts.maxFiles = n
		}
	}
	return opts
}

// prepare creates the log directory and returns the file to write.
// An explicit file is used as is; otherwise a fresh file goes into the
// rotated per-OS directory.
func (o fileOptions) prepare() (string, error) {
	if o.file != "" {
		if err := os.MkdirAll(filepath.Dir(o.file), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.file, nil
	}

	dir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.maxFiles > 0 {
		if err := rotateLogs(dir, o.maxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// rotateLogs deletes the oldest .log files so that, with the one about to be
// created, at most keep remain in dir
func rotateLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type stamped struct {
		path string
		mod  time.Time
	}
	var logs []stamped
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		if info, err := e.Info(); err == nil {
			logs = append(logs, stamped{path: filepath.Join(dir, e.Name()), mod: info.ModTime()})
		}
	}

	excess := len(logs) - keep + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b stamped) int { return a.mod.Compare(b.mod) })
	for _, l := range logs[:excess] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", l.path, err)
		}
	}
	return nil
}

// getLogDir returns the per-OS log directory for ghscout
func getLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	envOr := func(name string, fallback ...string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return filepath.Join(append([]string{home}, fallback...)...)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "ghscout"), nil
	case "linux":
		return filepath.Join(envOr("XDG_STATE_HOME", ".local", "state"), "ghscout"), nil
	case "windows":
		return filepath.Join(envOr("LOCALAPPDATA", "AppData", "Local"), "ghscout", "logs"), nil
	default:
		return filepath.Join(home, ".ghscout", "logs"), nil
	}
}
