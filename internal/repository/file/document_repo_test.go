package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_GetMissing(t *testing.T) {
	repo, err := NewDocumentRepository(t.TempDir())
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), domain.DocumentKey)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentRepository_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo, err := NewDocumentRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"a":1}`)))
	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"a":2}`)))

	got, err := repo.Get(ctx, domain.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must be cleaned up")
	assert.Equal(t, domain.DocumentKey+".json", entries[0].Name())
}

func TestDocumentRepository_RejectsPathKeys(t *testing.T) {
	repo, err := NewDocumentRepository(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		err := repo.Put(context.Background(), key, []byte(`{}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)
	}
}
