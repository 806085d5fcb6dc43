package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/estatedesk/property_marketplace/backend/search"
	"github.com/estatedesk/property_marketplace/backend/store"
)

const listingCacheTTL = 10 * time.Minute

// ListProperties serves the public search surface: the approved catalogue
// run through the filter/sort/paginate engine. Responses are cached in redis
// keyed by the filter query; the cache is optional and a nil client disables
// it.
func ListProperties(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if redisClient != nil {
			cacheKey := listingCacheKey(query)
			cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
			if err == nil {
				log.Printf("Cache hit for key: %s", cacheKey)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cachedData))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for key %s: %v", cacheKey, err)
			}
		}

		approved, err := properties.GetApproved(r.Context())
		if err != nil {
			log.Printf("Error loading approved properties: %v", err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		filters, sortKey, page := parseListingQuery(query)
		result := search.Run(approved, filters, sortKey, page)

		resultBytes, err := json.Marshal(result)
		if err != nil {
			log.Printf("Failed to serialize listing page: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if redisClient != nil {
			cacheKey := listingCacheKey(query)
			if err := redisClient.Set(r.Context(), cacheKey, resultBytes, listingCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

// FeaturedProperties serves the promoted subset of the approved catalogue.
func FeaturedProperties(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := properties.Featured(r.Context())
		if err != nil {
			log.Printf("Error loading featured properties: %v", err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		search.SortBy(featured, search.SortNewest)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(featured)
	}
}

// GetProperty looks a single record up by id. Pending records are visible
// here too: the detail page is reachable by the owner and the admin.
func GetProperty(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			log.Printf("Invalid property ID %q: %v", mux.Vars(r)["id"], err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		property, err := properties.GetByID(r.Context(), id)
		if err == store.ErrNotFound {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error loading property %d: %v", id, err)
			http.Error(w, "Error fetching property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)
	}
}

// parseListingQuery maps the search query parameters onto an engine
// configuration. Unparseable values fall back to the permissive default, in
// line with advisory-only validation.
func parseListingQuery(query url.Values) (search.Filters, string, int) {
	filters := search.DefaultFilters()

	filters.Term = query.Get("q")
	filters.Type = query.Get("type")
	filters.BHK = query["bhk"]
	filters.Amenities = query["amenity"]

	if raw := query.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = v
		} else {
			log.Printf("Invalid minPrice %q: %v", raw, err)
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = v
		} else {
			log.Printf("Invalid maxPrice %q: %v", raw, err)
		}
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page = v
		} else {
			log.Printf("Invalid page %q: %v", raw, err)
		}
	}

	return filters, query.Get("sort"), page
}

// listingCacheKey hashes the sorted query so equivalent filter
// configurations share a cache entry. The approved catalogue is the same for
// every caller, so the key is caller-independent.
func listingCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := append([]string(nil), queryParams[key]...)
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "listings:" + hex.EncodeToString(sum[:])
}

// invalidateListingCache drops every cached listing page. Called after any
// catalogue mutation.
func invalidateListingCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	ctx := context.Background()
	const scanPattern = "listings:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern %q: %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d listing cache keys: %v", len(keysToDelete), err)
	} else {
		log.Printf("Listing cache invalidated, %d keys deleted", len(keysToDelete))
	}
}
