package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/estatedesk/property_marketplace/backend/models"
	"github.com/estatedesk/property_marketplace/backend/store"
)

// MyProperties lists every record the caller owns, pending ones included.
func MyProperties(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			http.Error(w, "Missing identity in context", http.StatusUnauthorized)
			return
		}

		owned, err := properties.GetByOwner(r.Context(), claims.OwnerID())
		if err != nil {
			log.Printf("Error loading properties for owner %s: %v", claims.OwnerID(), err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(owned)
	}
}

// CreateProperty submits a new listing. Ownership comes from the token and
// every submission starts unapproved, whatever the payload claims.
func CreateProperty(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			http.Error(w, "Missing identity in context", http.StatusUnauthorized)
			return
		}

		var draft models.PropertyDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		draft.OwnerID = claims.OwnerID()
		draft.AdminApproved = false
		if draft.OwnerName == "" {
			draft.OwnerName = claims.Name
		}

		property, err := properties.Add(r.Context(), draft)
		if err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		go invalidateListingCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(property)
	}
}

// UpdateProperty patches a listing the caller owns.
func UpdateProperty(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			http.Error(w, "Missing identity in context", http.StatusUnauthorized)
			return
		}

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		existing, err := properties.GetByID(r.Context(), id)
		if err == store.ErrNotFound {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error loading property %d: %v", id, err)
			http.Error(w, "Error fetching property", http.StatusInternalServerError)
			return
		}
		if existing.OwnerID != claims.OwnerID() {
			log.Printf("Owner %s tried to update property %d owned by %s", claims.OwnerID(), id, existing.OwnerID)
			http.Error(w, "Not your property", http.StatusForbidden)
			return
		}

		var patch models.PropertyPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("Invalid update data: %v", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}

		// Owners never approve their own listings.
		patch.AdminApproved = nil

		updated, err := properties.Update(r.Context(), id, patch)
		if err == store.ErrNotFound {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Update failed for property %d: %v", id, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		go invalidateListingCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteProperty removes a listing the caller owns.
func DeleteProperty(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(r)
		if !ok {
			http.Error(w, "Missing identity in context", http.StatusUnauthorized)
			return
		}

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		existing, err := properties.GetByID(r.Context(), id)
		if err == store.ErrNotFound {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error loading property %d: %v", id, err)
			http.Error(w, "Error fetching property", http.StatusInternalServerError)
			return
		}
		if existing.OwnerID != claims.OwnerID() {
			log.Printf("Owner %s tried to delete property %d owned by %s", claims.OwnerID(), id, existing.OwnerID)
			http.Error(w, "Not your property", http.StatusForbidden)
			return
		}

		removed, err := properties.Delete(r.Context(), id)
		if err != nil {
			log.Printf("Delete failed for property %d: %v", id, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		go invalidateListingCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property deleted successfully"})
	}
}
