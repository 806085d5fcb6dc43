package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/property_marketplace/backend/models"
)

func newTestStore(t *testing.T) *PropertyStore {
	t.Helper()
	s := New(NewMemoryBlob())
	require.NoError(t, s.Init(context.Background()))
	return s
}

func ids(records []models.Property) []int {
	out := make([]int, 0, len(records))
	for _, p := range records {
		out = append(out, p.ID)
	}
	return out
}

func TestApprovedAndPendingPartitionCatalogue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	approved, err := s.GetApproved(ctx)
	require.NoError(t, err)
	pending, err := s.GetPending(ctx)
	require.NoError(t, err)

	assert.Len(t, all, 8)
	assert.Len(t, approved, 7)
	assert.Equal(t, []int{3}, ids(pending))
	assert.ElementsMatch(t, []int{1, 2, 4, 5, 6, 7, 8}, ids(approved))
	assert.Equal(t, len(all), len(approved)+len(pending))

	for _, p := range approved {
		assert.True(t, p.AdminApproved)
	}
	for _, p := range pending {
		assert.False(t, p.AdminApproved)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := s.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Affordable 1 BHK in Electronic City", p.Title)
}

func TestGetByOwnerIgnoresApprovalState(t *testing.T) {
	s := newTestStore(t)

	owned, err := s.GetByOwner(context.Background(), "1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, ids(owned))

	none, err := s.GetByOwner(context.Background(), "no-such-owner")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddAssignsStrictlyIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	draft := models.PropertyDraft{
		Title:       "New Flat",
		Location:    "Marathahalli, Bangalore",
		Price:       20000,
		Type:        "Apartment",
		BHK:         "2 BHK",
		Area:        900,
		Status:      models.StatusAvailable,
		ListingType: models.ListingRent,
		OwnerID:     "2",
	}

	first, err := s.Add(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 9, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	// Identical payload, no deduplication: a second distinct record.
	second, err := s.Add(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 10, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestAddUsesMaxExistingPlusOne(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	removed, err := s.Delete(ctx, 8)
	require.NoError(t, err)
	assert.True(t, removed)

	added, err := s.Add(ctx, models.PropertyDraft{Title: "x", OwnerID: "2"})
	require.NoError(t, err)
	// Max remaining id is 7, so the next id is 8 again.
	assert.Equal(t, 8, added.ID)
}

func TestUpdateMergesPatchShallowly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newTitle := "Renovated 2 BHK Apartment"
	newPrice := 27000.0
	updated, err := s.Update(ctx, 1, models.PropertyPatch{Title: &newTitle, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, newPrice, updated.Price)
	// Omitted fields untouched.
	assert.Equal(t, "BTM Layout, Bangalore, Karnataka", updated.Location)
	assert.Equal(t, "2 BHK", updated.BHK)
	assert.True(t, updated.AdminApproved)

	stored, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateReplacesSlicesWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	updated, err := s.Update(ctx, 1, models.PropertyPatch{
		Amenities: []string{"Parking"},
		Images:    []string{"https://example.com/new.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Parking"}, updated.Amenities)
	assert.Equal(t, []string{"https://example.com/new.jpg"}, updated.Images)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	title := "whatever"
	_, err := s.Update(context.Background(), 999, models.PropertyPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApproveIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.Approve(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	afterFirst, err := s.GetAll(ctx)
	require.NoError(t, err)

	ok, err = s.Approve(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	afterSecond, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterFirst, afterSecond)

	pending, err := s.GetPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApproveNotFound(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.Approve(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRejectRemovesRecordPermanently(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.Reject(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.GetByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	// Second reject finds nothing.
	ok, err = s.Reject(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.NotContains(t, ids(all), 3)
}

func TestDeleteReportsWhetherRemovalHappened(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.Delete(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadsFallBackToSeedWithoutInit(t *testing.T) {
	s := New(NewMemoryBlob())

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestInitSeedsOnlyOnce(t *testing.T) {
	blob := NewMemoryBlob()
	s := New(blob)
	ctx := context.Background()

	require.NoError(t, s.Init(ctx))
	_, err := s.Add(ctx, models.PropertyDraft{Title: "extra", OwnerID: "2"})
	require.NoError(t, err)

	// A second Init must not reset the catalogue.
	require.NoError(t, s.Init(ctx))
	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestFeaturedIsApprovedOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	featured, err := s.Featured(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 5, 8}, ids(featured))

	// Flagging the pending record featured must not surface it.
	flag := true
	_, err = s.Update(ctx, 3, models.PropertyPatch{Featured: &flag})
	require.NoError(t, err)

	featured, err = s.Featured(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids(featured), 3)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 8, Approved: 7, Pending: 1, Owners: 6}, stats)
}
