package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*DocumentRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.db")
	repo, err := NewDocumentRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestDocumentRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Get(context.Background(), domain.DocumentKey)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentRepository_Upsert(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"v":1}`)))
	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"v":2}`)))
	require.NoError(t, repo.Put(ctx, "other", []byte(`{"v":3}`)))

	got, err := repo.Get(ctx, domain.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	got, err = repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, `{"v":3}`, string(got))
}

func TestDocumentRepository_ReopenKeepsData(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"kept":true}`)))
	require.NoError(t, repo.Close())

	reopened, err := NewDocumentRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, domain.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, `{"kept":true}`, string(got))
}
