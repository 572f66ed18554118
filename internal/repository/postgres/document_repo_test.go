package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a live database and run only when TEST_DATABASE_URL is set
func newTestRepo(t *testing.T) *DocumentRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewDocumentRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `DELETE FROM documents WHERE key LIKE 'test_%'`)
	require.NoError(t, err)
	return repo
}

func TestDocumentRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(context.Background(), "test_missing")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentRepository_Upsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "test_doc", []byte(`{"v":1}`)))
	require.NoError(t, repo.Put(ctx, "test_doc", []byte(`{"v":2}`)))

	got, err := repo.Get(ctx, "test_doc")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))
}

func TestDocumentRepository_EnsureSchemaIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}
