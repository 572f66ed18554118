// Package memory keeps budget documents in process memory. Data is lost on exit.
package memory

import (
	"context"
	"sync"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
)

// DocumentRepository implements domain.DocumentRepository with a map
type DocumentRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewDocumentRepository creates an empty DocumentRepository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{data: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key
func (r *DocumentRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.data[key]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return append([]byte(nil), data...), nil
}

// Put stores a copy of data under key
func (r *DocumentRepository) Put(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), data...)
	return nil
}
