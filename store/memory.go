package store

import (
	"context"
	"sync"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// MemoryBlob keeps the collection in process memory. Used by tests and by
// demo mode, where losing state on restart is fine.
type MemoryBlob struct {
	mu      sync.RWMutex
	records []models.Property
	saved   bool
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

func (b *MemoryBlob) Load(ctx context.Context) ([]models.Property, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.saved {
		return nil, false, nil
	}
	return cloneRecords(b.records), true, nil
}

func (b *MemoryBlob) Save(ctx context.Context, records []models.Property) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = cloneRecords(records)
	b.saved = true
	return nil
}
