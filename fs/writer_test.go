package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ docxtext.TextWriter = &fs.Writer{}
}

func TestWriter_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("writes text verbatim", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")

		err := fs.NewWriter().WriteText(context.Background(), path, "Hi\nBye")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Hi\nBye", string(content))
	})

	t.Run("writes UTF-8 bytes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")

		err := fs.NewWriter().WriteText(context.Background(), path, "Grüße, 世界")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("Grüße, 世界"), content)
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0644))

		err := fs.NewWriter().WriteText(context.Background(), path, "short")

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(content))
	})

	t.Run("writes empty file for empty text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")

		err := fs.NewWriter().WriteText(context.Background(), path, "")

		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("does not create parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.txt")

		err := fs.NewWriter().WriteText(context.Background(), path, "text")

		require.Error(t, err)
	})

	t.Run("requires a path", func(t *testing.T) {
		t.Parallel()

		err := fs.NewWriter().WriteText(context.Background(), "", "text")

		require.Error(t, err)
		assert.Equal(t, docxtext.EINVALID, docxtext.ErrorCode(err))
	})
}
