package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/property_marketplace/backend/models"
	"github.com/estatedesk/property_marketplace/backend/routes"
	"github.com/estatedesk/property_marketplace/backend/search"
	"github.com/estatedesk/property_marketplace/backend/store"
)

func newTestServer(t *testing.T) *mux.Router {
	t.Helper()
	t.Setenv("JWT_KEY", "test-secret")

	properties := store.New(store.NewMemoryBlob())
	require.NoError(t, properties.Init(context.Background()))

	router := mux.NewRouter()
	routes.Routes(router, properties, nil)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *mux.Router, email string, role models.Role) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "demo123",
		"role":     string(role),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func listingIDs(items []models.Property) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestLoginIssuesTokenAndLandingRoute(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "admin@demo.com",
		"password": "demo123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Redirect string `json:"redirect"`
		User     struct {
			Role models.Role `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/admin", resp.Redirect)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestLoginRejectsMismatchedRole(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "owner@demo.com",
		"password": "demo123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListingRequiresAuthentication(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/properties", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/login", resp.Redirect)
}

func TestRoleGateRedirectsToOwnLanding(t *testing.T) {
	router := newTestServer(t)
	token := login(t, router, "user@demo.com", models.RoleUser)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/pending", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/search", resp.Redirect)
}

func TestSearchReturnsOnlyApprovedAndFiltered(t *testing.T) {
	router := newTestServer(t)
	token := login(t, router, "user@demo.com", models.RoleUser)

	query := url.Values{}
	query.Set("minPrice", "20000")
	query.Set("maxPrice", "30000")
	query.Add("bhk", "2 BHK")
	query.Set("type", "all")

	rec := doJSON(t, router, http.MethodGet, "/api/properties?"+query.Encode(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page search.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.ElementsMatch(t, []int{1, 5}, listingIDs(page.Items))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.PageCount)
}

func TestSearchEmptyResultIsAnEmptyPage(t *testing.T) {
	router := newTestServer(t)
	token := login(t, router, "user@demo.com", models.RoleUser)

	rec := doJSON(t, router, http.MethodGet, "/api/properties?q=mumbai", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page search.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.PageCount)
}

func TestOwnerSubmissionGoesThroughApproval(t *testing.T) {
	router := newTestServer(t)
	ownerToken := login(t, router, "owner@demo.com", models.RoleOwner)
	userToken := login(t, router, "user@demo.com", models.RoleUser)
	adminToken := login(t, router, "admin@demo.com", models.RoleAdmin)

	draft := models.PropertyDraft{
		Title:       "Bright 2 BHK near Manyata Tech Park",
		Location:    "Nagawara, Bangalore, Karnataka",
		Price:       28000,
		Type:        "Apartment",
		BHK:         "2 BHK",
		Area:        1050,
		Status:      models.StatusAvailable,
		ListingType: models.ListingRent,
		// The payload lies about approval; the server must ignore it.
		AdminApproved: true,
		OwnerID:       "someone-else",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/properties", ownerToken, draft)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 9, created.ID)
	assert.False(t, created.AdminApproved)
	assert.Equal(t, "2", created.OwnerID)

	// Not publicly visible yet.
	rec = doJSON(t, router, http.MethodGet, "/api/properties?q=manyata", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page search.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Items)

	// Visible on the owner's own dashboard.
	rec = doJSON(t, router, http.MethodGet, "/api/owner/properties", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var owned []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owned))
	assert.Contains(t, listingIDs(owned), 9)

	// In the admin approval queue.
	rec = doJSON(t, router, http.MethodGet, "/api/admin/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	assert.Contains(t, listingIDs(pending), 9)

	// Approve, then it surfaces in public search.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/properties/9/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/properties?q=manyata", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, []int{9}, listingIDs(page.Items))
}

func TestOwnerCannotTouchForeignListings(t *testing.T) {
	router := newTestServer(t)
	ownerToken := login(t, router, "owner@demo.com", models.RoleOwner)

	newTitle := "hijacked"
	rec := doJSON(t, router, http.MethodPut, "/api/properties/4", ownerToken, models.PropertyPatch{Title: &newTitle})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/properties/4", ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRejectRemovesListing(t *testing.T) {
	router := newTestServer(t)
	adminToken := login(t, router, "admin@demo.com", models.RoleAdmin)
	userToken := login(t, router, "user@demo.com", models.RoleUser)

	rec := doJSON(t, router, http.MethodDelete, "/api/admin/properties/3", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/properties/3", userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Gone, not archived: rejecting again is a 404.
	rec = doJSON(t, router, http.MethodDelete, "/api/admin/properties/3", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminStats(t *testing.T) {
	router := newTestServer(t)
	adminToken := login(t, router, "admin@demo.com", models.RoleAdmin)

	rec := doJSON(t, router, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, store.Stats{Total: 8, Approved: 7, Pending: 1, Owners: 6}, stats)
}

func TestFeaturedEndpoint(t *testing.T) {
	router := newTestServer(t)
	userToken := login(t, router, "user@demo.com", models.RoleUser)

	rec := doJSON(t, router, http.MethodGet, "/api/properties/featured", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var featured []models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	assert.ElementsMatch(t, []int{1, 2, 5, 8}, listingIDs(featured))
	for _, p := range featured {
		assert.True(t, p.Featured)
		assert.True(t, p.AdminApproved)
	}
}
