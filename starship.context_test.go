package starship

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_GetEnv(t *testing.T) {
	t.Run("override map wins", func(t *testing.T) {
		sctx := NewContext(t.TempDir(), WithEnv(map[string]string{"AWS_PROFILE": "dev"}))

		value, ok := sctx.GetEnv("AWS_PROFILE")
		assert.True(t, ok)
		assert.Equal(t, "dev", value)
	})

	t.Run("override map misses absent names", func(t *testing.T) {
		t.Setenv("STARSHIP_TEST_LEAK", "leaked")
		sctx := NewContext(t.TempDir(), WithEnv(map[string]string{}))

		_, ok := sctx.GetEnv("STARSHIP_TEST_LEAK")
		assert.False(t, ok)
	})

	t.Run("process environment without override", func(t *testing.T) {
		t.Setenv("STARSHIP_TEST_VALUE", "present")
		sctx := NewContext(t.TempDir())

		value, ok := sctx.GetEnv("STARSHIP_TEST_VALUE")
		assert.True(t, ok)
		assert.Equal(t, "present", value)
	})
}

func TestContext_HomeDir(t *testing.T) {
	sctx := NewContext(t.TempDir(), WithEnv(map[string]string{"HOME": "/custom/home"}))

	home, err := sctx.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", home)
}

func TestContext_ExecCmd(t *testing.T) {
	t.Run("trimmed stdout", func(t *testing.T) {
		sctx := NewContext(t.TempDir())

		out, err := sctx.ExecCmd(context.Background(), "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("missing binary", func(t *testing.T) {
		sctx := NewContext(t.TempDir())

		_, err := sctx.ExecCmd(context.Background(), "starship-no-such-binary")
		require.Error(t, err)
	})

	t.Run("timeout bounds the command", func(t *testing.T) {
		sctx := NewContext(t.TempDir(), WithCommandTimeout(50*time.Millisecond))

		start := time.Now()
		_, err := sctx.ExecCmd(context.Background(), "sleep", "5")
		require.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestDirScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpanfile"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.pl"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o755))

	sctx := NewContext(dir)

	t.Run("matches by file name", func(t *testing.T) {
		assert.True(t, sctx.Scan().SetFiles([]string{"cpanfile"}).IsMatch())
	})

	t.Run("matches by extension", func(t *testing.T) {
		assert.True(t, sctx.Scan().SetExtensions([]string{"pl"}).IsMatch())
	})

	t.Run("matches by folder", func(t *testing.T) {
		assert.True(t, sctx.Scan().SetFolders([]string{"lib"}).IsMatch())
	})

	t.Run("folder names do not match as files", func(t *testing.T) {
		assert.False(t, sctx.Scan().SetFiles([]string{"lib"}).IsMatch())
	})

	t.Run("no criteria never matches", func(t *testing.T) {
		assert.False(t, sctx.Scan().IsMatch())
	})

	t.Run("empty directory", func(t *testing.T) {
		empty := NewContext(t.TempDir())
		assert.False(t, empty.Scan().
			SetFiles([]string{"cpanfile"}).
			SetExtensions([]string{"pl"}).
			IsMatch())
	})

	t.Run("unreadable directory", func(t *testing.T) {
		gone := NewContext(filepath.Join(dir, "does-not-exist"))
		assert.False(t, gone.Scan().SetExtensions([]string{"pl"}).IsMatch())
	})
}
