package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// ErrNotFound is returned by lookups and updates whose target id does not
// exist.
var ErrNotFound = errors.New("property not found")

// PropertyStore is the single source of truth for property records. It reads
// and writes the full collection through a Blob on every operation and seeds
// the demo catalogue when nothing has been persisted yet.
type PropertyStore struct {
	blob Blob
	now  func() time.Time
}

func New(blob Blob) *PropertyStore {
	return &PropertyStore{blob: blob, now: time.Now}
}

// Init persists the seed catalogue if the backend is empty. Reads fall back
// to the seed either way, so Init is only needed when the seed should be
// durable before the first mutation.
func (s *PropertyStore) Init(ctx context.Context) error {
	_, ok, err := s.blob.Load(ctx)
	if err != nil {
		return fmt.Errorf("initializing property store: %w", err)
	}
	if ok {
		return nil
	}
	return s.blob.Save(ctx, Seed())
}

// load returns the persisted collection, or the seed when nothing has been
// persisted yet.
func (s *PropertyStore) load(ctx context.Context) ([]models.Property, error) {
	records, ok, err := s.blob.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Seed(), nil
	}
	return records, nil
}

// GetAll returns every record regardless of approval state.
func (s *PropertyStore) GetAll(ctx context.Context) ([]models.Property, error) {
	return s.load(ctx)
}

// GetApproved returns the publicly visible records.
func (s *PropertyStore) GetApproved(ctx context.Context) ([]models.Property, error) {
	return s.filter(ctx, func(p models.Property) bool { return p.AdminApproved })
}

// GetPending returns records awaiting admin approval.
func (s *PropertyStore) GetPending(ctx context.Context) ([]models.Property, error) {
	return s.filter(ctx, func(p models.Property) bool { return !p.AdminApproved })
}

// Featured returns the approved records promoted to the featured section.
func (s *PropertyStore) Featured(ctx context.Context) ([]models.Property, error) {
	return s.filter(ctx, func(p models.Property) bool { return p.AdminApproved && p.Featured })
}

// GetByOwner returns every record owned by ownerID, approved or not.
func (s *PropertyStore) GetByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return s.filter(ctx, func(p models.Property) bool { return p.OwnerID == ownerID })
}

func (s *PropertyStore) filter(ctx context.Context, keep func(models.Property) bool) ([]models.Property, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Property, 0, len(records))
	for _, p := range records {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID returns the record with the given id or ErrNotFound.
func (s *PropertyStore) GetByID(ctx context.Context, id int) (models.Property, error) {
	records, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}
	for _, p := range records {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, ErrNotFound
}

// Add assigns the next id (max existing + 1), stamps CreatedAt, appends and
// persists. Two identical drafts produce two distinct records.
func (s *PropertyStore) Add(ctx context.Context, draft models.PropertyDraft) (models.Property, error) {
	records, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}

	maxID := 0
	for _, p := range records {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	record := models.Property{
		ID:            maxID + 1,
		Title:         draft.Title,
		Location:      draft.Location,
		Price:         draft.Price,
		Type:          draft.Type,
		BHK:           draft.BHK,
		Area:          draft.Area,
		Images:        draft.Images,
		VideoURL:      draft.VideoURL,
		Featured:      draft.Featured,
		Status:        draft.Status,
		ListingType:   draft.ListingType,
		Amenities:     draft.Amenities,
		Description:   draft.Description,
		OwnerName:     draft.OwnerName,
		OwnerPhone:    draft.OwnerPhone,
		OwnerID:       draft.OwnerID,
		AdminApproved: draft.AdminApproved,
		CreatedAt:     s.now(),
	}

	records = append(records, record)
	if err := s.blob.Save(ctx, records); err != nil {
		return models.Property{}, err
	}
	return record, nil
}

// Update applies the patch to the record with the given id and persists.
// Returns ErrNotFound when the id is absent.
func (s *PropertyStore) Update(ctx context.Context, id int, patch models.PropertyPatch) (models.Property, error) {
	records, err := s.load(ctx)
	if err != nil {
		return models.Property{}, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		patch.Apply(&records[i])
		if err := s.blob.Save(ctx, records); err != nil {
			return models.Property{}, err
		}
		return records[i], nil
	}
	return models.Property{}, ErrNotFound
}

// Delete removes the record with the given id. Reports whether a removal
// happened.
func (s *PropertyStore) Delete(ctx context.Context, id int) (bool, error) {
	records, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, p := range records {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.blob.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Approve marks the record publicly visible.
func (s *PropertyStore) Approve(ctx context.Context, id int) (bool, error) {
	approved := true
	_, err := s.Update(ctx, id, models.PropertyPatch{AdminApproved: &approved})
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Reject removes a submission outright. Rejection is destructive here: there
// is no rejected status, the record is simply gone.
func (s *PropertyStore) Reject(ctx context.Context, id int) (bool, error) {
	return s.Delete(ctx, id)
}

// Stats summarizes the catalogue for the admin dashboard.
type Stats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Owners   int `json:"owners"`
}

func (s *PropertyStore) Stats(ctx context.Context) (Stats, error) {
	records, err := s.load(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(records)}
	owners := make(map[string]struct{})
	for _, p := range records {
		if p.AdminApproved {
			stats.Approved++
		} else {
			stats.Pending++
		}
		owners[p.OwnerID] = struct{}{}
	}
	stats.Owners = len(owners)
	return stats, nil
}
