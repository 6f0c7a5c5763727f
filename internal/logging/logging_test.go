package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv("GHSCOUT_DEBUG", "")
	t.Setenv("GHSCOUT_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv("GHSCOUT_DEBUG", "")
	t.Setenv("GHSCOUT_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(true, file, DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, file, path)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging initialized")
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GHSCOUT_DEBUG", "1")
	t.Setenv("GHSCOUT_DEBUG_FILE", "/tmp/env.log")
	t.Setenv("GHSCOUT_MAX_LOG_FILES", "5")

	t.Run("fills defaults", func(t *testing.T) {
		opts := fromEnv(fileOptions{maxFiles: DefaultMaxLogFiles})
		assert.Equal(t, fileOptions{debug: true, file: "/tmp/env.log", maxFiles: 5}, opts)
	})

	t.Run("explicit values win", func(t *testing.T) {
		opts := fromEnv(fileOptions{file: "/tmp/flag.log", maxFiles: 7})
		assert.Equal(t, "/tmp/flag.log", opts.file)
		assert.Equal(t, 7, opts.maxFiles)
	})

	t.Run("bad max is ignored", func(t *testing.T) {
		t.Setenv("GHSCOUT_MAX_LOG_FILES", "lots")
		opts := fromEnv(fileOptions{maxFiles: DefaultMaxLogFiles})
		assert.Equal(t, DefaultMaxLogFiles, opts.maxFiles)
	})
}

func TestRotateLogs_UnderLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
