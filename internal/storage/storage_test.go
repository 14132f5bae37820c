package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"local":  local,
		"memory": NewMemoryStore(),
	}
}

func TestStore_WriteReadOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			const doc = "JANE DOE 2024-03-05.pdf"

			require.NoError(t, s.Write(ctx, doc, []byte("first")))
			got, err := s.Read(ctx, doc)
			require.NoError(t, err)
			assert.Equal(t, "first", string(got))

			require.NoError(t, s.Write(ctx, doc, []byte("second")))
			got, err = s.Read(ctx, doc)
			require.NoError(t, err)
			assert.Equal(t, "second", string(got))

			ok, err := s.Exists(ctx, doc)
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, s.Delete(ctx, doc))
			ok, err = s.Exists(ctx, doc)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Read(ctx, "missing.pdf")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.True(t, common.IsNotFound(err))

			err = s.Delete(ctx, "missing.pdf")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_RejectsPathNames(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, bad := range []string{"", "  ", "../escape.pdf", "a/b.pdf", `a\b.pdf`, ".."} {
				assert.ErrorIs(t, s.Write(ctx, bad, []byte("x")), ErrInvalidName, "name %q", bad)
			}
		})
	}
}

func TestLocalStore_WritesUnderRoot(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStore(filepath.Join(root, "nested", "statements"))
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), "Unknown Unknown_Date.pdf", []byte("pdf")))

	data, err := os.ReadFile(filepath.Join(root, "nested", "statements", "Unknown Unknown_Date.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "nested", "statements"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Write(context.Background(), "a.pdf", buf))
	buf[0] = 'z'

	got, err := s.Read(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, []string{"a.pdf"}, s.Names())
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, Config{Backend: common.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = New(ctx, Config{Backend: common.StorageLocal, Root: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)

	_, err = New(ctx, Config{Backend: "ftp"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
