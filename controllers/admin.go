package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/estatedesk/property_marketplace/backend/store"
)

// AllProperties returns the full catalogue, approval state included.
func AllProperties(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := properties.GetAll(r.Context())
		if err != nil {
			log.Printf("Error loading properties: %v", err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// PendingProperties returns the approval queue.
func PendingProperties(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := properties.GetPending(r.Context())
		if err != nil {
			log.Printf("Error loading pending properties: %v", err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// ApproveProperty makes a submission publicly visible.
func ApproveProperty(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		approved, err := properties.Approve(r.Context(), id)
		if err != nil {
			log.Printf("Approve failed for property %d: %v", id, err)
			http.Error(w, "Approve failed", http.StatusInternalServerError)
			return
		}
		if !approved {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		go invalidateListingCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property approved"})
	}
}

// RejectProperty removes a submission outright; rejected listings are not
// kept around in any state.
func RejectProperty(properties *store.PropertyStore, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		rejected, err := properties.Reject(r.Context(), id)
		if err != nil {
			log.Printf("Reject failed for property %d: %v", id, err)
			http.Error(w, "Reject failed", http.StatusInternalServerError)
			return
		}
		if !rejected {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		go invalidateListingCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Message: "Property rejected and removed"})
	}
}

// GetStats serves the admin dashboard counters.
func GetStats(properties *store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := properties.Stats(r.Context())
		if err != nil {
			log.Printf("Error computing stats: %v", err)
			http.Error(w, "Error computing stats", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
