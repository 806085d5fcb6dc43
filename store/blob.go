package store

import (
	"context"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// Blob persists the entire property collection under one fixed key. Every
// read loads the whole collection and every write replaces it wholesale;
// that whole-blob replace is the only atomicity this system relies on, so
// backends must never expose partial reads or incremental writes.
type Blob interface {
	// Load returns the persisted collection. ok is false when nothing has
	// been persisted yet.
	Load(ctx context.Context) (records []models.Property, ok bool, err error)
	// Save replaces the persisted collection.
	Save(ctx context.Context, records []models.Property) error
}

// cloneRecords copies the slice and its nested slices so callers can mutate
// the result without touching what a backend holds.
func cloneRecords(records []models.Property) []models.Property {
	if records == nil {
		return nil
	}
	out := make([]models.Property, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Images != nil {
			out[i].Images = append([]string(nil), out[i].Images...)
		}
		if out[i].Amenities != nil {
			out[i].Amenities = append([]string(nil), out[i].Amenities...)
		}
	}
	return out
}
