package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryReadAbsent(t *testing.T) {
	s := NewMemory()

	v, err := s.Read(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryWriteReadRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Write(ctx, "k", []byte("v1")))
	v, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)

	require.NoError(t, s.Write(ctx, "k", []byte("v2")))
	v, err = s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Remove(ctx, "k"))
	v, err = s.Read(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestMemoryReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Write(ctx, "k", []byte("abc")))
	v, err := s.Read(ctx, "k")
	require.NoError(t, err)

	v[0] = 'x'
	again, err := s.Read(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}
