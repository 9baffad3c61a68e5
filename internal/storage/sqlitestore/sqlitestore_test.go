package sqlitestore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var memCounter int

// openMem opens a uniquely named in-memory database so tests stay isolated.
func openMem(t *testing.T) *Store {
	t.Helper()
	memCounter++
	dsn := fmt.Sprintf("file:sqlitestore%d?mode=memory&cache=shared", memCounter)

	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReadAbsent(t *testing.T) {
	s := openMem(t)

	v, err := s.Read(context.Background(), "anime-gallery-db")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestWriteReadRemove(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	require.NoError(t, s.Write(ctx, "k", []byte(`{"users":[]}`)))

	v, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"users":[]}`), v)

	// Overwrite.
	require.NoError(t, s.Write(ctx, "k", []byte("v2")))
	v, err = s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Remove(ctx, "k"))
	v, err = s.Read(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Remove(ctx, "k"))
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gallery.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "k", []byte("persisted")))
	require.NoError(t, s.Close())

	// Reopening runs migrations again; they must be idempotent.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), v)
}
