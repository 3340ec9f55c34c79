package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Put(ctx, "user/job.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "user", "job.pdf"), p)

	got, err := s.Get(ctx, "user/job.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(got))

	_, err = s.Put(ctx, "user/job.pdf", []byte("%PDF-2"))
	require.NoError(t, err)
	got, _ = s.Get(ctx, "user/job.pdf")
	assert.Equal(t, "%PDF-2", string(got))

	entries, err := os.ReadDir(filepath.Join(root, "user"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStoreRejectsEscapes(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "../x", "a/../../x", "/etc/passwd", "."} {
		_, err := s.Put(context.Background(), key, []byte("x"))
		assert.ErrorIs(t, err, ErrBadKey, key)
	}
}
